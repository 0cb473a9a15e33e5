package systems

import (
	"strconv"

	"golang.org/x/image/colornames"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/ecs"
	"github.com/decker502/skyshooter/pkg/game"
)

// 文字字号（CSS 像素）
const (
	bossLabelSize    = 20
	powerUpLabelSize = 14
)

// 调色板
var (
	playerColor          = colornames.Blue
	bulletColor          = colornames.White
	enemyColor           = colornames.Red
	bossColor            = colornames.Darkred
	powerUpAddColor      = colornames.Green
	powerUpMultiplyColor = colornames.Purple
	labelColor           = colornames.White
)

// RenderSystem 每帧清屏并绘制所有实体
// 绘制顺序：玩家副本 → 子弹 → 敌人 → 道具 → 首领
type RenderSystem struct {
	gameState *game.GameState
	config    *config.GameConfig
	renderer  game.Renderer
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(gs *game.GameState, cfg *config.GameConfig, renderer game.Renderer) *RenderSystem {
	return &RenderSystem{
		gameState: gs,
		config:    cfg,
		renderer:  renderer,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw() {
	if s.renderer == nil {
		return
	}
	field := s.config.Playfield
	s.renderer.Clear(0, 0, field.Width, field.Height)

	s.drawPlayer()
	s.gameState.Player.Bullets.Each(func(_ ecs.EntityID, b *components.Bullet) {
		s.renderer.FillRect(b.X, b.Y, b.Width, b.Height, bulletColor)
	})
	s.gameState.Enemies.Each(func(_ ecs.EntityID, e *components.Enemy) {
		s.renderer.FillRect(e.X, e.Y, e.Width, e.Height, enemyColor)
	})
	s.gameState.PowerUps.Each(func(_ ecs.EntityID, p *components.PowerUp) {
		s.drawPowerUp(p)
	})
	s.drawBoss()
}

// drawPlayer 绘制所有飞船副本，副本从基准位置向左排列
func (s *RenderSystem) drawPlayer() {
	p := &s.gameState.Player
	for i := 0; i < p.PlayersCount; i++ {
		s.renderer.FillRect(p.CopyX(i), p.Y, p.Width, p.Height, playerColor)
	}
}

// drawPowerUp 绘制道具及其效果文字
func (s *RenderSystem) drawPowerUp(p *components.PowerUp) {
	clr := powerUpMultiplyColor
	if p.Type == components.PowerUpAdd {
		clr = powerUpAddColor
	}
	s.renderer.FillRect(p.X, p.Y, p.Width, p.Height, clr)
	s.renderer.FillText(p.Type.Label(), p.X+10, p.Y+15, game.TextStyle{Size: powerUpLabelSize}, labelColor)
}

// drawBoss 绘制首领及其血量
func (s *RenderSystem) drawBoss() {
	boss := s.gameState.Boss
	if boss == nil {
		return
	}
	s.renderer.FillRect(boss.X, boss.Y, boss.Width, boss.Height, bossColor)
	s.renderer.FillText("Boss HP: "+strconv.Itoa(boss.Health), boss.X+10, boss.Y-10,
		game.TextStyle{Size: bossLabelSize}, labelColor)
}

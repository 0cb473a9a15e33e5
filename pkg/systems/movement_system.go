package systems

import (
	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/ecs"
	"github.com/decker502/skyshooter/pkg/game"
)

// MovementSystem 推进所有实体的位置
//
// 每帧按 玩家 → 子弹 → 敌人 → 道具 → 首领 的顺序移动。
// 敌人或首领的身体碰到玩家基准飞船时，Update 返回 true（游戏结束），
// 游戏结束的处理由调用方负责。
type MovementSystem struct {
	gameState *game.GameState
	config    *config.GameConfig
	input     game.InputState
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(gs *game.GameState, cfg *config.GameConfig, input game.InputState) *MovementSystem {
	return &MovementSystem{
		gameState: gs,
		config:    cfg,
		input:     input,
	}
}

// Update 移动所有实体
//
// 返回：
//   - bool: 本帧是否有敌人或首领撞上玩家
func (s *MovementSystem) Update() bool {
	s.movePlayer()
	s.moveBullets()
	hit := s.moveEnemies()
	s.movePowerUps()
	if s.moveBoss() {
		hit = true
	}
	return hit
}

// movePlayer 根据输入移动玩家
// 左右两个方向各自独立检查边界，同时按下时两个判断都会执行
func (s *MovementSystem) movePlayer() {
	if s.input == nil {
		return
	}
	p := &s.gameState.Player
	if s.input.MoveLeft() && p.X > 0 {
		p.X -= p.Speed
	}
	if s.input.MoveRight() && p.X < s.config.Playfield.Width-p.Width {
		p.X += p.Speed
	}
}

// moveBullets 子弹上移，飞出顶部（y < 0）后移除
func (s *MovementSystem) moveBullets() {
	bullets := s.gameState.Player.Bullets
	speed := s.config.Bullet.Speed
	bullets.Each(func(id ecs.EntityID, b *components.Bullet) {
		b.Y -= speed
		if b.Y < 0 {
			bullets.DestroyEntity(id)
		}
	})
	bullets.RemoveMarkedEntities()
}

// moveEnemies 敌人下落并在越过追踪线后向玩家靠拢
func (s *MovementSystem) moveEnemies() bool {
	hit := false
	s.gameState.Enemies.Each(func(_ ecs.EntityID, e *components.Enemy) {
		e.Y += e.Speed
		e.X += s.homingStep(e.X, e.Y)
		if s.touchesPlayer(e.Bounds()) {
			hit = true
		}
	})
	return hit
}

// moveBoss 首领与敌人使用相同的移动规则
func (s *MovementSystem) moveBoss() bool {
	boss := s.gameState.Boss
	if boss == nil {
		return false
	}
	boss.Y += boss.Speed
	boss.X += s.homingStep(boss.X, boss.Y)
	return s.touchesPlayer(boss.Bounds())
}

// movePowerUps 道具下落，落出底部（y > 场地高度）后移除
func (s *MovementSystem) movePowerUps() {
	powerUps := s.gameState.PowerUps
	speed := s.config.PowerUp.Speed
	height := s.config.Playfield.Height
	powerUps.Each(func(id ecs.EntityID, p *components.PowerUp) {
		p.Y += speed
		if p.Y > height {
			powerUps.DestroyEntity(id)
		}
	})
	powerUps.RemoveMarkedEntities()
}

// homingStep 越过追踪线后的水平位移
// 玩家在右侧时 +step，否则（包括X相等）-step
func (s *MovementSystem) homingStep(x, y float64) float64 {
	if y <= s.config.Playfield.AggroLine() {
		return 0
	}
	step := s.config.Playfield.HomingStep
	if s.gameState.Player.X > x {
		return step
	}
	return -step
}

// touchesPlayer 检测身体是否碰到玩家基准飞船
// 只比较对方底边与玩家顶边，以及水平方向的重叠
func (s *MovementSystem) touchesPlayer(r components.Rect) bool {
	p := s.gameState.Player.Bounds()
	return r.Bottom() > p.Y &&
		r.X < p.Right() &&
		r.Right() > p.X
}

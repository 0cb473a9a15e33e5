package systems

import (
	"log"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
)

// shotOffsetY 子弹出生点位于飞船顶部上方的距离
const shotOffsetY = 5

// SpawnSystem 实体生成系统
//
// 职责：
//   - 按波次生成敌人（整批替换）
//   - 生成关底首领
//   - 投放道具
//   - 每次射击为每个飞船副本生成一颗子弹
//
// 所有生成操作都是对状态的直接替换或追加，不会失败。
type SpawnSystem struct {
	gameState *game.GameState
	config    *config.GameConfig
}

// NewSpawnSystem 创建实体生成系统
func NewSpawnSystem(gs *game.GameState, cfg *config.GameConfig) *SpawnSystem {
	return &SpawnSystem{
		gameState: gs,
		config:    cfg,
	}
}

// WaveSize 计算当前关卡第 wave 波（从 1 开始）的敌人数量
// 公式：baseSize + wave*growthPerWave + currentLevel
func (s *SpawnSystem) WaveSize(wave int) int {
	w := s.config.Waves
	return w.BaseSize + wave*w.GrowthPerWave + s.gameState.CurrentLevel
}

// LevelStartWaveSize 升级后第一批敌人的数量（baseSize + 0*growthPerWave，不含关卡加成）
func (s *SpawnSystem) LevelStartWaveSize() int {
	return s.config.Waves.BaseSize
}

// BossHealth 计算当前关卡首领血量：baseHealth + currentLevel*healthPerLevel
func (s *SpawnSystem) BossHealth() int {
	b := s.config.Boss
	return b.BaseHealth + s.gameState.CurrentLevel*b.HealthPerLevel
}

// EnemySpeed 计算当前关卡敌人速度（speedPerLevel 默认为 0，即恒定速度）
func (s *SpawnSystem) EnemySpeed() float64 {
	e := s.config.Enemy
	return e.Speed + float64(s.gameState.CurrentLevel)*e.SpeedPerLevel
}

// CreateEnemies 用 waveSize 个新敌人替换当前敌人集合
// 敌人在场地上方水平排成一行
func (s *SpawnSystem) CreateEnemies(waveSize int) {
	e := s.config.Enemy
	enemies := s.gameState.Enemies
	enemies.Clear()

	speed := s.EnemySpeed()
	for i := 0; i < waveSize; i++ {
		enemies.CreateEntity(components.Enemy{
			X:      e.StartX + float64(i)*e.Spacing,
			Y:      e.StartY,
			Width:  e.Width,
			Height: e.Height,
			Speed:  speed,
		})
	}

	log.Printf("[SpawnSystem] Spawned %d enemies (level=%d, wave=%d, speed=%.2f)",
		waveSize, s.gameState.CurrentLevel, s.gameState.CurrentWave, speed)
}

// CreateBoss 生成关底首领（替换已有首领，保证最多一个）
func (s *SpawnSystem) CreateBoss() {
	b := s.config.Boss
	s.gameState.Boss = &components.Boss{
		X:      s.config.Playfield.Width / 3,
		Y:      b.StartY,
		Width:  b.Width,
		Height: b.Height,
		Speed:  b.Speed,
		Health: s.BossHealth(),
	}

	log.Printf("[SpawnSystem] Spawned boss (level=%d, health=%d)",
		s.gameState.CurrentLevel, s.gameState.Boss.Health)
}

// CreatePowerUps 投放一对道具：左侧加法、右侧乘法
func (s *SpawnSystem) CreatePowerUps() {
	p := s.config.PowerUp
	s.gameState.PowerUps.CreateEntity(components.PowerUp{
		X:      0,
		Y:      p.StartY,
		Width:  p.Width,
		Height: p.Height,
		Type:   components.PowerUpAdd,
	})
	s.gameState.PowerUps.CreateEntity(components.PowerUp{
		X:      s.config.Playfield.Width / 2,
		Y:      p.StartY,
		Width:  p.Width,
		Height: p.Height,
		Type:   components.PowerUpMultiply,
	})
}

// Shoot 每个飞船副本各发射一颗子弹
// 子弹水平居中于副本，出生在副本顶部上方 shotOffsetY 处
func (s *SpawnSystem) Shoot() {
	player := &s.gameState.Player
	b := s.config.Bullet
	for i := 0; i < player.PlayersCount; i++ {
		player.Bullets.CreateEntity(components.Bullet{
			X:      player.CopyX(i) + player.Width/2 - b.Width/2,
			Y:      player.Y - shotOffsetY,
			Width:  b.Width,
			Height: b.Height,
		})
	}
}

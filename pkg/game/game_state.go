package game

import (
	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/ecs"
)

// Phase 游戏阶段
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseCountdown
	PhaseGameOver
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseCountdown:
		return "Countdown"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState 一局游戏的全部状态
// 所有系统通过同一个 *GameState 读写，不使用包级全局变量
type GameState struct {
	Player   components.Player
	Enemies  *ecs.Store[components.Enemy]
	Boss     *components.Boss // nil 表示当前没有首领
	PowerUps *ecs.Store[components.PowerUp]

	CurrentWave  int // 本关已触发的波次，升级时归零
	CurrentLevel int // >= 1
	Points       int // 只增不减

	IsGameOver    bool
	IsCountdown   bool
	CountdownTime int // 倒计时剩余秒数
}

// NewGameState 创建一局新游戏的状态
//
// 参数：
//   - cfg: 游戏配置
//   - level: 起始关卡（通常来自存档），< 1 时使用 1
//   - points: 起始分数（通常来自存档），< 0 时使用 0
func NewGameState(cfg *config.GameConfig, level, points int) *GameState {
	if level < 1 {
		level = 1
	}
	if points < 0 {
		points = 0
	}

	return &GameState{
		Player: components.Player{
			X:            cfg.Playfield.Width / 2,
			Y:            cfg.Playfield.Height - cfg.Player.BottomOffset,
			Width:        cfg.Player.Width,
			Height:       cfg.Player.Height,
			Speed:        cfg.Player.Speed,
			Spacing:      cfg.Player.Spacing,
			PlayersCount: cfg.Player.StartingCount,
			Bullets:      ecs.NewStore[components.Bullet](),
		},
		Enemies:       ecs.NewStore[components.Enemy](),
		PowerUps:      ecs.NewStore[components.PowerUp](),
		CurrentLevel:  level,
		Points:        points,
		CountdownTime: cfg.Timing.CountdownSeconds,
	}
}

// Phase 返回当前阶段，GameOver 优先于 Countdown
func (gs *GameState) Phase() Phase {
	switch {
	case gs.IsGameOver:
		return PhaseGameOver
	case gs.IsCountdown:
		return PhaseCountdown
	default:
		return PhasePlaying
	}
}

// AddPoints 增加分数，忽略非正数
func (gs *GameState) AddPoints(amount int) {
	if amount <= 0 {
		return
	}
	gs.Points += amount
}

// HasBoss 当前是否存在首领
func (gs *GameState) HasBoss() bool {
	return gs.Boss != nil
}

// ApplyPowerUp 应用道具效果，副本数量只增不减
func (gs *GameState) ApplyPowerUp(t components.PowerUpType) {
	next := t.Apply(gs.Player.PlayersCount)
	if next > gs.Player.PlayersCount {
		gs.Player.PlayersCount = next
	}
}

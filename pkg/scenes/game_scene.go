package scenes

import (
	"log"
	"time"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/systems"
)

// Dependencies 游戏场景的外部依赖
// 前端（桌面、移动端、终端）各自提供绘图表面、输入与存档
type Dependencies struct {
	// Config 游戏配置，为 nil 时使用默认配置
	Config *config.GameConfig
	// Renderer 绘图表面
	Renderer game.Renderer
	// Input 移动意图
	Input game.InputState
	// Slot 存档槽，为 nil 时使用内存存档
	Slot game.SaveSlot
	// ScoreSink, CountdownSink 分数与倒计时显示，可为 nil
	ScoreSink     game.TextSink
	CountdownSink game.TextSink
	// Start 场景开始的时刻，调度器以此为起点
	Start time.Time
}

// GameScene 一局游戏
//
// 持有游戏状态、所有系统和调度器。
// 射击、倒计时两个定时任务注册在调度器上，由 Tick 统一推进，
// 因此所有状态修改都发生在调用 Tick 的同一个 goroutine 上。
type GameScene struct {
	gameState *game.GameState
	config    *config.GameConfig
	scheduler *game.Scheduler

	spawnSystem    *systems.SpawnSystem
	movementSystem *systems.MovementSystem
	physicsSystem  *systems.PhysicsSystem
	levelSystem    *systems.LevelSystem
	renderSystem   *systems.RenderSystem

	shootTask *game.Task
}

// NewGameScene 创建游戏场景
//
// 从存档读取关卡与分数，生成开局敌人与道具，刷新分数显示，并开始定时射击。
func NewGameScene(deps Dependencies) *GameScene {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	slot := deps.Slot
	if slot == nil {
		slot = game.NewMemorySlot()
	}

	saveManager := game.NewSaveManager(slot)
	level, points := saveManager.LoadProgress()
	gs := game.NewGameState(cfg, level, points)
	scheduler := game.NewScheduler(deps.Start)

	s := &GameScene{
		gameState: gs,
		config:    cfg,
		scheduler: scheduler,
	}
	s.spawnSystem = systems.NewSpawnSystem(gs, cfg)
	s.movementSystem = systems.NewMovementSystem(gs, cfg, deps.Input)
	s.levelSystem = systems.NewLevelSystem(gs, cfg, s.spawnSystem, saveManager, scheduler,
		deps.Renderer, deps.ScoreSink, deps.CountdownSink)
	s.physicsSystem = systems.NewPhysicsSystem(gs, cfg, s.levelSystem)
	s.renderSystem = systems.NewRenderSystem(gs, cfg, deps.Renderer)

	// 开局：一排敌人（第 0 波）与一对道具
	s.spawnSystem.CreateEnemies(cfg.Waves.OpeningWaveSize)
	s.spawnSystem.CreatePowerUps()
	s.levelSystem.UpdateScore()

	s.shootTask = scheduler.Every("shoot", cfg.Timing.ShootingInterval(), s.shoot)

	log.Printf("[GameScene] Session started: level=%d, points=%d", level, points)
	return s
}

// shoot 定时射击，倒计时期间不射击
func (s *GameScene) shoot() {
	if s.gameState.IsCountdown {
		return
	}
	s.spawnSystem.Shoot()
}

// Tick 推进一帧
//
// 顺序：调度器（射击、倒计时）→ 清屏绘制 → 移动 → 碰撞 → 关卡推进。
// 移动后若有敌人撞上玩家则进入游戏结束，本帧剩余步骤不再执行。
//
// 返回：
//   - bool: 游戏是否仍在进行；游戏结束后再调用 Tick 不做任何事
func (s *GameScene) Tick(now time.Time) bool {
	if s.gameState.IsGameOver {
		return false
	}

	s.scheduler.Advance(now)
	s.renderSystem.Draw()

	if s.movementSystem.Update() {
		s.levelSystem.GameOver()
		return false
	}

	s.physicsSystem.Update()
	s.levelSystem.Update()
	return true
}

// State 返回游戏状态（只读使用）
func (s *GameScene) State() *game.GameState {
	return s.gameState
}

// IsGameOver 游戏是否已结束
func (s *GameScene) IsGameOver() bool {
	return s.gameState.IsGameOver
}

package systems

import (
	"log"
	"strconv"
	"time"

	"golang.org/x/image/colornames"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
)

// gameOverTextSize "Game Over" 文字字号
const gameOverTextSize = 30

// LevelSystem 关卡进度状态机
//
// 状态：
//   - Playing: 敌人清空且无首领时推进到下一波，超过每关波次上限后生成首领
//   - Countdown: 首领被击败后进入，实时倒计时结束后升级并回到 Playing
//   - GameOver: 玩家被撞，终止状态
//
// 职责：
//   - 推进波次、升级、保存进度
//   - 维护分数与倒计时显示
//   - 游戏结束时绘制结束文字并清空存档
type LevelSystem struct {
	gameState   *game.GameState
	config      *config.GameConfig
	spawnSystem *SpawnSystem
	saveManager *game.SaveManager
	scheduler   *game.Scheduler
	renderer    game.Renderer

	scoreSink     game.TextSink
	countdownSink game.TextSink

	countdownTask *game.Task // 进行中的倒计时任务，未倒计时时为 nil
}

// NewLevelSystem 创建关卡系统
//
// 参数：
//   - gs: 游戏状态
//   - cfg: 游戏配置
//   - spawn: 实体生成系统
//   - saves: 存档管理器
//   - scheduler: 游戏循环的调度器（倒计时任务注册在其上）
//   - renderer: 绘图表面（游戏结束文字）
//   - scoreSink, countdownSink: 分数与倒计时显示
func NewLevelSystem(
	gs *game.GameState,
	cfg *config.GameConfig,
	spawn *SpawnSystem,
	saves *game.SaveManager,
	scheduler *game.Scheduler,
	renderer game.Renderer,
	scoreSink, countdownSink game.TextSink,
) *LevelSystem {
	return &LevelSystem{
		gameState:     gs,
		config:        cfg,
		spawnSystem:   spawn,
		saveManager:   saves,
		scheduler:     scheduler,
		renderer:      renderer,
		scoreSink:     scoreSink,
		countdownSink: countdownSink,
	}
}

// Update 每帧检查是否推进到下一波
// 条件：敌人全部清空、没有首领、不在倒计时中、本关波次未超上限
func (s *LevelSystem) Update() {
	gs := s.gameState
	if gs.IsGameOver || gs.IsCountdown || gs.HasBoss() || gs.Enemies.Len() > 0 {
		return
	}
	if gs.CurrentWave <= s.config.Waves.MaxWavesPerLevel {
		s.NextWave()
	}
}

// NextWave 推进一波：超过每关波次上限时生成首领，否则生成下一波敌人
func (s *LevelSystem) NextWave() {
	gs := s.gameState
	gs.CurrentWave++
	if gs.CurrentWave > s.config.Waves.MaxWavesPerLevel {
		log.Printf("[LevelSystem] Level %d: all %d waves cleared, boss incoming",
			gs.CurrentLevel, s.config.Waves.MaxWavesPerLevel)
		s.spawnSystem.CreateBoss()
		return
	}

	log.Printf("[LevelSystem] Level %d: wave %d/%d", gs.CurrentLevel, gs.CurrentWave, s.config.Waves.MaxWavesPerLevel)
	s.spawnSystem.CreateEnemies(s.spawnSystem.WaveSize(gs.CurrentWave))
}

// OnBossDefeated 实现 CombatListener，首领被击败后开始升级倒计时
func (s *LevelSystem) OnBossDefeated() {
	s.StartCountdown()
}

// StartCountdown 开始升级倒计时
// 倒计时由调度器上的 1 秒实时任务驱动，与帧率无关
func (s *LevelSystem) StartCountdown() {
	gs := s.gameState
	if gs.IsGameOver || s.countdownTask != nil {
		return
	}

	gs.IsCountdown = true
	gs.CountdownTime = s.config.Timing.CountdownSeconds
	if gs.CountdownTime <= 0 {
		s.finishCountdown()
		return
	}

	s.setCountdownText(strconv.Itoa(gs.CountdownTime))
	s.countdownTask = s.scheduler.Every("countdown", time.Second, s.tickCountdown)
	log.Printf("[LevelSystem] Countdown started: %ds", gs.CountdownTime)
}

// tickCountdown 每秒触发一次
func (s *LevelSystem) tickCountdown() {
	gs := s.gameState
	gs.CountdownTime--
	s.setCountdownText(strconv.Itoa(gs.CountdownTime))
	if gs.CountdownTime > 0 {
		return
	}

	// 归零时取消任务，保证只取消一次
	if s.countdownTask != nil {
		s.countdownTask.Cancel()
		s.countdownTask = nil
	}
	s.finishCountdown()
}

// finishCountdown 清除倒计时显示并升级
func (s *LevelSystem) finishCountdown() {
	s.setCountdownText("")
	s.gameState.IsCountdown = false
	s.LevelUp()
}

// LevelUp 升级：关卡 +1、奖励分数、保存进度、波次归零并生成新关卡的第一批敌人
func (s *LevelSystem) LevelUp() {
	gs := s.gameState
	gs.CurrentLevel++
	gs.AddPoints(s.config.Scoring.LevelUpPoints)
	s.UpdateScore()

	if s.saveManager != nil {
		if err := s.saveManager.SaveProgress(gs.CurrentLevel, gs.Points); err != nil {
			// 保存失败不影响游戏继续
			log.Printf("[LevelSystem] Warning: failed to save progress: %v", err)
		}
	}

	gs.CurrentWave = 0
	s.spawnSystem.CreateEnemies(s.spawnSystem.LevelStartWaveSize())
	if s.config.PowerUp.EachLevel {
		s.spawnSystem.CreatePowerUps()
	}

	log.Printf("[LevelSystem] Level up: level=%d, points=%d", gs.CurrentLevel, gs.Points)
}

// UpdateScore 刷新分数显示，分数不变时重复调用结果相同
func (s *LevelSystem) UpdateScore() {
	if s.scoreSink != nil {
		s.scoreSink.SetText(ScoreText(s.gameState.Points))
	}
}

// ScoreText 返回分数显示文字
func ScoreText(points int) string {
	return "Score: " + strconv.Itoa(points)
}

// GameOver 游戏结束：绘制结束文字、清空存档、取消所有定时任务
// 终止状态，重复调用无副作用
func (s *LevelSystem) GameOver() {
	gs := s.gameState
	if gs.IsGameOver {
		return
	}
	gs.IsGameOver = true

	if s.renderer != nil {
		field := s.config.Playfield
		s.renderer.FillText("Game Over", field.Width/2-100, field.Height/2,
			game.TextStyle{Size: gameOverTextSize}, colornames.White)
	}

	if s.saveManager != nil {
		if err := s.saveManager.Clear(); err != nil {
			log.Printf("[LevelSystem] Warning: failed to clear save: %v", err)
		}
	}

	if s.scheduler != nil {
		s.scheduler.CancelAll()
	}
	s.countdownTask = nil

	log.Printf("[LevelSystem] Game over: level=%d, wave=%d, points=%d",
		gs.CurrentLevel, gs.CurrentWave, gs.Points)
}

func (s *LevelSystem) setCountdownText(text string) {
	if s.countdownSink != nil {
		s.countdownSink.SetText(text)
	}
}

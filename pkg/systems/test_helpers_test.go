package systems

import (
	"image/color"
	"time"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// drawCall 记录一次绘图调用
type drawCall struct {
	op    string // "clear", "rect", "text"
	x, y  float64
	w, h  float64
	text  string
	size  float64
	color color.Color
}

// recordingRenderer 记录所有绘图调用的测试渲染器
type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) Clear(x, y, w, h float64) {
	r.calls = append(r.calls, drawCall{op: "clear", x: x, y: y, w: w, h: h})
}

func (r *recordingRenderer) FillRect(x, y, w, h float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "rect", x: x, y: y, w: w, h: h, color: clr})
}

func (r *recordingRenderer) FillText(text string, x, y float64, style game.TextStyle, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "text", x: x, y: y, text: text, size: style.Size, color: clr})
}

func (r *recordingRenderer) reset() {
	r.calls = r.calls[:0]
}

func (r *recordingRenderer) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

// fakeInput 可控的输入状态
type fakeInput struct {
	left, right bool
}

func (i *fakeInput) MoveLeft() bool  { return i.left }
func (i *fakeInput) MoveRight() bool { return i.right }

// recordingListener 记录战斗回调次数
type recordingListener struct {
	scoreUpdates int
	bossDefeats  int
}

func (l *recordingListener) UpdateScore()    { l.scoreUpdates++ }
func (l *recordingListener) OnBossDefeated() { l.bossDefeats++ }

// newTestState 创建默认配置下的游戏状态
func newTestState(level, points int) (*game.GameState, *config.GameConfig) {
	cfg := config.DefaultGameConfig()
	return game.NewGameState(cfg, level, points), cfg
}

// addBullet 在指定位置放置一颗子弹
func addBullet(gs *game.GameState, x, y float64) {
	gs.Player.Bullets.CreateEntity(components.Bullet{X: x, Y: y, Width: 5, Height: 10})
}

// addEnemy 在指定位置放置一个静止敌人
func addEnemy(gs *game.GameState, x, y float64) {
	gs.Enemies.CreateEntity(components.Enemy{X: x, Y: y, Width: 10, Height: 10, Speed: 0.5})
}

// testLevelSystem 组装测试用的关卡系统
type testLevelSystem struct {
	gs        *game.GameState
	cfg       *config.GameConfig
	spawn     *SpawnSystem
	level     *LevelSystem
	physics   *PhysicsSystem
	scheduler *game.Scheduler
	slot      *game.MemorySlot
	renderer  *recordingRenderer
	score     *game.TextLabel
	countdown *game.TextLabel
}

func newTestLevelSystem(level, points int) *testLevelSystem {
	gs, cfg := newTestState(level, points)
	t := &testLevelSystem{
		gs:        gs,
		cfg:       cfg,
		scheduler: game.NewScheduler(testEpoch),
		slot:      game.NewMemorySlot(),
		renderer:  &recordingRenderer{},
		score:     &game.TextLabel{},
		countdown: &game.TextLabel{},
	}
	t.spawn = NewSpawnSystem(gs, cfg)
	t.level = NewLevelSystem(gs, cfg, t.spawn, game.NewSaveManager(t.slot), t.scheduler,
		t.renderer, t.score, t.countdown)
	t.physics = NewPhysicsSystem(gs, cfg, t.level)
	return t
}

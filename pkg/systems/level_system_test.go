package systems

import (
	"testing"
	"time"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/ecs"
)

// shootAllEnemies 在每个敌人内部放一颗子弹
func shootAllEnemies(tl *testLevelSystem) {
	tl.gs.Enemies.Each(func(_ ecs.EntityID, e *components.Enemy) {
		addBullet(tl.gs, e.X+e.Width/2, e.Y+e.Height/2)
	})
}

// TestUpdateSpawnsFirstWave 场地清空时推进到第一波
func TestUpdateSpawnsFirstWave(t *testing.T) {
	tl := newTestLevelSystem(1, 0)

	tl.level.Update()

	if tl.gs.CurrentWave != 1 {
		t.Errorf("CurrentWave = %d, expected 1", tl.gs.CurrentWave)
	}
	if tl.gs.Enemies.Len() != 9 {
		t.Errorf("Enemies.Len() = %d, expected 9", tl.gs.Enemies.Len())
	}
}

// TestUpdateWaitsForClearField 仍有敌人、首领或正在倒计时时不推进
func TestUpdateWaitsForClearField(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tl *testLevelSystem)
	}{
		{name: "仍有敌人", setup: func(tl *testLevelSystem) { addEnemy(tl.gs, 100, 100) }},
		{name: "仍有首领", setup: func(tl *testLevelSystem) {
			tl.gs.Boss = &components.Boss{Width: 100, Height: 50, Health: 1}
		}},
		{name: "倒计时中", setup: func(tl *testLevelSystem) { tl.gs.IsCountdown = true }},
		{name: "游戏已结束", setup: func(tl *testLevelSystem) { tl.gs.IsGameOver = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTestLevelSystem(1, 0)
			tt.setup(tl)

			tl.level.Update()

			if tl.gs.CurrentWave != 0 {
				t.Errorf("CurrentWave = %d, expected 0", tl.gs.CurrentWave)
			}
		})
	}
}

// TestWaveProgressionToBoss 三波之后出现首领，首领存在期间不再推进
func TestWaveProgressionToBoss(t *testing.T) {
	tl := newTestLevelSystem(1, 0)
	expectedSizes := []int{9, 11, 13}

	for i, size := range expectedSizes {
		tl.level.Update()
		if tl.gs.CurrentWave != i+1 || tl.gs.Enemies.Len() != size {
			t.Fatalf("wave %d: CurrentWave = %d, enemies = %d, expected %d",
				i+1, tl.gs.CurrentWave, tl.gs.Enemies.Len(), size)
		}
		tl.gs.Enemies.Clear()
	}

	tl.level.Update()
	if tl.gs.CurrentWave != 4 || tl.gs.Boss == nil {
		t.Fatalf("CurrentWave = %d, boss = %v, expected wave 4 with boss", tl.gs.CurrentWave, tl.gs.Boss)
	}
	if tl.gs.Boss.Health != 35 || tl.gs.Enemies.Len() != 0 {
		t.Errorf("boss health = %d, enemies = %d, expected 35 and 0", tl.gs.Boss.Health, tl.gs.Enemies.Len())
	}

	tl.level.Update()
	if tl.gs.CurrentWave != 4 {
		t.Errorf("CurrentWave = %d, expected 4 while boss alive", tl.gs.CurrentWave)
	}

	// 首领离场但未被击败时，本关不再推进
	tl.gs.Boss = nil
	tl.level.Update()
	if tl.gs.CurrentWave != 4 || tl.gs.Enemies.Len() != 0 {
		t.Errorf("CurrentWave = %d, enemies = %d, expected no further waves", tl.gs.CurrentWave, tl.gs.Enemies.Len())
	}
}

// TestClearingWaveAdvances 击毁第一波全部 9 个敌人得 900 分，随后出现 11 个敌人的第二波
func TestClearingWaveAdvances(t *testing.T) {
	tl := newTestLevelSystem(1, 0)
	tl.level.Update()

	shootAllEnemies(tl)
	tl.physics.Update()

	if tl.gs.Points != 900 {
		t.Errorf("Points = %d, expected 900", tl.gs.Points)
	}
	if tl.score.Text() != "Score: 900" {
		t.Errorf("score text = %q, expected %q", tl.score.Text(), "Score: 900")
	}

	tl.level.Update()
	if tl.gs.CurrentWave != 2 || tl.gs.Enemies.Len() != 11 {
		t.Errorf("CurrentWave = %d, enemies = %d, expected 2 and 11", tl.gs.CurrentWave, tl.gs.Enemies.Len())
	}
}

// TestBossDefeatLevelUp 击败首领 → 3 秒倒计时 → 升级
func TestBossDefeatLevelUp(t *testing.T) {
	tl := newTestLevelSystem(1, 0)
	tl.gs.CurrentWave = 3
	tl.level.Update()
	boss := tl.gs.Boss
	if boss == nil || boss.Health != 35 {
		t.Fatalf("boss = %+v, expected health 35", boss)
	}

	for i := 0; i < 35; i++ {
		addBullet(tl.gs, boss.X+50, boss.Y+25)
	}
	tl.physics.Update()

	if tl.gs.Boss != nil {
		t.Fatal("boss should be defeated after 35 hits")
	}
	if tl.gs.Points != 1000 {
		t.Errorf("Points = %d, expected 1000", tl.gs.Points)
	}
	if !tl.gs.IsCountdown || tl.gs.CountdownTime != 3 || tl.countdown.Text() != "3" {
		t.Fatalf("countdown = %v/%d/%q, expected true/3/\"3\"",
			tl.gs.IsCountdown, tl.gs.CountdownTime, tl.countdown.Text())
	}

	// 倒计时期间不推进波次
	tl.level.Update()
	if tl.gs.CurrentWave != 4 || tl.gs.Enemies.Len() != 0 {
		t.Errorf("wave advanced during countdown: wave=%d enemies=%d", tl.gs.CurrentWave, tl.gs.Enemies.Len())
	}

	steps := []struct {
		elapsed  time.Duration
		expected string
	}{
		{elapsed: 1 * time.Second, expected: "2"},
		{elapsed: 2 * time.Second, expected: "1"},
	}
	for _, step := range steps {
		tl.scheduler.Advance(testEpoch.Add(step.elapsed))
		if tl.countdown.Text() != step.expected || tl.gs.CurrentLevel != 1 {
			t.Fatalf("after %v: countdown = %q, level = %d", step.elapsed, tl.countdown.Text(), tl.gs.CurrentLevel)
		}
	}

	tl.scheduler.Advance(testEpoch.Add(3 * time.Second))

	if tl.gs.CurrentLevel != 2 || tl.gs.Points != 2000 {
		t.Errorf("level = %d, points = %d, expected 2 and 2000", tl.gs.CurrentLevel, tl.gs.Points)
	}
	if tl.gs.CurrentWave != 0 || tl.gs.Enemies.Len() != 6 {
		t.Errorf("wave = %d, enemies = %d, expected 0 and 6", tl.gs.CurrentWave, tl.gs.Enemies.Len())
	}
	if tl.gs.IsCountdown || tl.countdown.Text() != "" {
		t.Errorf("countdown should be cleared: %v/%q", tl.gs.IsCountdown, tl.countdown.Text())
	}
	if tl.score.Text() != "Score: 2000" {
		t.Errorf("score text = %q", tl.score.Text())
	}
	if tl.scheduler.Len() != 0 {
		t.Errorf("scheduler.Len() = %d, expected 0", tl.scheduler.Len())
	}

	level, _ := tl.slot.Load("level")
	points, _ := tl.slot.Load("points")
	if level != "2" || points != "2000" {
		t.Errorf("saved level=%q points=%q, expected \"2\" and \"2000\"", level, points)
	}

	// 倒计时结束后不再触发
	tl.scheduler.Advance(testEpoch.Add(10 * time.Second))
	if tl.gs.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d after countdown finished, expected 2", tl.gs.CurrentLevel)
	}
}

// TestCountdownIgnoresSecondStart 倒计时进行中再次开始无效
func TestCountdownIgnoresSecondStart(t *testing.T) {
	tl := newTestLevelSystem(1, 0)
	tl.level.StartCountdown()
	tl.level.StartCountdown()

	if tl.scheduler.Len() != 1 {
		t.Errorf("scheduler.Len() = %d, expected 1", tl.scheduler.Len())
	}
}

// TestZeroCountdownLevelsUpImmediately 倒计时为 0 时立即升级
func TestZeroCountdownLevelsUpImmediately(t *testing.T) {
	tl := newTestLevelSystem(1, 0)
	tl.cfg.Timing.CountdownSeconds = 0

	tl.level.OnBossDefeated()

	if tl.gs.CurrentLevel != 2 || tl.gs.IsCountdown {
		t.Errorf("level = %d, countdown = %v, expected 2 and false", tl.gs.CurrentLevel, tl.gs.IsCountdown)
	}
	if tl.scheduler.Len() != 0 {
		t.Errorf("scheduler.Len() = %d, expected 0", tl.scheduler.Len())
	}
}

// TestLevelUpPowerUpsEachLevel 开启 eachLevel 时每关重新投放道具
func TestLevelUpPowerUpsEachLevel(t *testing.T) {
	tests := []struct {
		eachLevel bool
		expected  int
	}{
		{eachLevel: false, expected: 0},
		{eachLevel: true, expected: 2},
	}

	for _, tt := range tests {
		tl := newTestLevelSystem(1, 0)
		tl.cfg.PowerUp.EachLevel = tt.eachLevel

		tl.level.LevelUp()

		if tl.gs.PowerUps.Len() != tt.expected {
			t.Errorf("eachLevel=%v: PowerUps.Len() = %d, expected %d", tt.eachLevel, tl.gs.PowerUps.Len(), tt.expected)
		}
	}
}

// TestGameOver 游戏结束：绘制文字、清空存档、取消定时任务
func TestGameOver(t *testing.T) {
	tl := newTestLevelSystem(3, 4500)
	if err := tl.slot.Save("level", "3"); err != nil {
		t.Fatal(err)
	}
	tl.level.StartCountdown()

	tl.level.GameOver()

	if !tl.gs.IsGameOver {
		t.Error("IsGameOver should be true")
	}
	if tl.slot.Len() != 0 {
		t.Errorf("save slot has %d keys, expected 0", tl.slot.Len())
	}
	if tl.scheduler.Len() != 0 {
		t.Errorf("scheduler.Len() = %d, expected 0", tl.scheduler.Len())
	}

	if len(tl.renderer.calls) != 1 {
		t.Fatalf("got %d draw calls, expected 1", len(tl.renderer.calls))
	}
	call := tl.renderer.calls[0]
	if call.text != "Game Over" || call.x != 300 || call.y != 400 || call.size != 30 {
		t.Errorf("game over text = %+v", call)
	}

	// 重复调用无副作用
	tl.level.GameOver()
	if len(tl.renderer.calls) != 1 {
		t.Errorf("second GameOver drew again: %d calls", len(tl.renderer.calls))
	}

	// 倒计时任务已取消，不会再升级
	tl.scheduler.Advance(testEpoch.Add(5 * time.Second))
	if tl.gs.CurrentLevel != 3 {
		t.Errorf("CurrentLevel = %d, expected 3", tl.gs.CurrentLevel)
	}
}

// TestUpdateScoreIdempotent 分数不变时重复刷新结果相同
func TestUpdateScoreIdempotent(t *testing.T) {
	tl := newTestLevelSystem(1, 1200)

	tl.level.UpdateScore()
	first := tl.score.Text()
	tl.level.UpdateScore()

	if first != "Score: 1200" || tl.score.Text() != first {
		t.Errorf("score text = %q then %q", first, tl.score.Text())
	}
}

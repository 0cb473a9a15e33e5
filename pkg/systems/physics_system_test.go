package systems

import (
	"testing"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/ecs"
)

// TestBulletHits 测试子弹命中的边界条件
func TestBulletHits(t *testing.T) {
	target := components.Rect{X: 100, Y: 100, Width: 10, Height: 10}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{name: "正中", x: 105, y: 105, expected: true},
		{name: "底边内侧", x: 105, y: 109, expected: true},
		{name: "恰在底边", x: 105, y: 110, expected: false},
		{name: "恰在左边", x: 100, y: 105, expected: false},
		{name: "恰在右边", x: 110, y: 105, expected: false},
		{name: "目标上方也算命中", x: 105, y: 0, expected: true},
		{name: "目标下方", x: 105, y: 200, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &components.Bullet{X: tt.x, Y: tt.y, Width: 5, Height: 10}
			if got := bulletHits(b, target); got != tt.expected {
				t.Errorf("bulletHits(%v, %v) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

// TestOneBulletKillsOneEnemy 一颗子弹最多击毁一个敌人，且是生成顺序中最早的那个
func TestOneBulletKillsOneEnemy(t *testing.T) {
	gs, cfg := newTestState(1, 0)
	listener := &recordingListener{}
	addEnemy(gs, 100, 100)
	addEnemy(gs, 100, 100)
	second := gs.Enemies.IDs()[1]
	addBullet(gs, 105, 105)

	NewPhysicsSystem(gs, cfg, listener).Update()

	if gs.Enemies.Len() != 1 {
		t.Fatalf("Enemies.Len() = %d, expected 1", gs.Enemies.Len())
	}
	if !gs.Enemies.IsAlive(second) {
		t.Error("the earlier enemy should be destroyed first")
	}
	if gs.Player.Bullets.Len() != 0 {
		t.Errorf("Bullets.Len() = %d, expected 0", gs.Player.Bullets.Len())
	}
	if gs.Points != 100 || listener.scoreUpdates != 1 {
		t.Errorf("points = %d, scoreUpdates = %d, expected 100 and 1", gs.Points, listener.scoreUpdates)
	}
}

// TestEnemyKilledOnce 两颗子弹同时命中同一敌人只计一次分，第二颗子弹保留
func TestEnemyKilledOnce(t *testing.T) {
	gs, cfg := newTestState(1, 0)
	addEnemy(gs, 100, 100)
	addBullet(gs, 105, 105)
	addBullet(gs, 106, 105)

	NewPhysicsSystem(gs, cfg, nil).Update()

	if gs.Enemies.Len() != 0 {
		t.Errorf("Enemies.Len() = %d, expected 0", gs.Enemies.Len())
	}
	if gs.Player.Bullets.Len() != 1 {
		t.Errorf("Bullets.Len() = %d, expected 1", gs.Player.Bullets.Len())
	}
	if gs.Points != 100 {
		t.Errorf("Points = %d, expected 100", gs.Points)
	}
}

// TestMultipleKillsInOneTick 同一帧多次击杀
func TestMultipleKillsInOneTick(t *testing.T) {
	gs, cfg := newTestState(1, 0)
	listener := &recordingListener{}
	for i := 0; i < 3; i++ {
		x := float64(100 + i*50)
		addEnemy(gs, x, 100)
		addBullet(gs, x+5, 105)
	}
	addBullet(gs, 700, 700) // 未命中

	NewPhysicsSystem(gs, cfg, listener).Update()

	if gs.Enemies.Len() != 0 || gs.Player.Bullets.Len() != 1 {
		t.Errorf("enemies = %d, bullets = %d, expected 0 and 1", gs.Enemies.Len(), gs.Player.Bullets.Len())
	}
	if gs.Points != 300 || listener.scoreUpdates != 3 {
		t.Errorf("points = %d, scoreUpdates = %d, expected 300 and 3", gs.Points, listener.scoreUpdates)
	}
}

// TestBossDamageAndDefeat 测试首领受伤与击败
func TestBossDamageAndDefeat(t *testing.T) {
	gs, cfg := newTestState(1, 0)
	listener := &recordingListener{}
	ps := NewPhysicsSystem(gs, cfg, listener)
	gs.Boss = &components.Boss{X: 300, Y: 100, Width: 100, Height: 50, Speed: 0.5, Health: 3}

	addBullet(gs, 350, 120)
	addBullet(gs, 360, 120)
	ps.Update()

	if gs.Boss == nil || gs.Boss.Health != 1 {
		t.Fatalf("boss = %+v, expected health 1", gs.Boss)
	}
	if gs.Player.Bullets.Len() != 0 || gs.Points != 0 {
		t.Errorf("bullets = %d, points = %d, expected 0 and 0", gs.Player.Bullets.Len(), gs.Points)
	}

	// 第一颗子弹击败首领，其余子弹不再命中
	for i := 0; i < 3; i++ {
		addBullet(gs, 350, 120)
	}
	ps.Update()

	if gs.Boss != nil {
		t.Fatal("boss should be removed at health 0")
	}
	if gs.Points != 1000 {
		t.Errorf("Points = %d, expected 1000", gs.Points)
	}
	if listener.bossDefeats != 1 || listener.scoreUpdates != 1 {
		t.Errorf("bossDefeats = %d, scoreUpdates = %d, expected 1 and 1", listener.bossDefeats, listener.scoreUpdates)
	}
	if gs.Player.Bullets.Len() != 2 {
		t.Errorf("Bullets.Len() = %d, expected 2", gs.Player.Bullets.Len())
	}
}

// TestBulletsHitEnemiesBeforeBoss 同一颗子弹先检测敌人，已用掉的子弹不会再伤害首领
func TestBulletsHitEnemiesBeforeBoss(t *testing.T) {
	gs, cfg := newTestState(1, 0)
	gs.Boss = &components.Boss{X: 300, Y: 100, Width: 100, Height: 50, Speed: 0.5, Health: 5}
	addEnemy(gs, 345, 110)
	addBullet(gs, 350, 115)

	NewPhysicsSystem(gs, cfg, nil).Update()

	if gs.Enemies.Len() != 0 {
		t.Error("enemy should be destroyed")
	}
	if gs.Boss.Health != 5 {
		t.Errorf("Boss.Health = %d, expected 5", gs.Boss.Health)
	}
}

// TestPowerUpPickup 测试道具拾取（完整 AABB）
func TestPowerUpPickup(t *testing.T) {
	tests := []struct {
		name          string
		playerX       float64
		expectedCount int
		remaining     int
	}{
		// 加法道具右边 400 不大于玩家左边 400，不重叠
		{name: "只碰到乘法道具", playerX: 400, expectedCount: 2, remaining: 1},
		{name: "只碰到加法道具", playerX: 100, expectedCount: 3, remaining: 1},
		// 同一帧按投放顺序先加后乘：(1+2)*2
		{name: "同时碰到两个道具", playerX: 390, expectedCount: 6, remaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, cfg := newTestState(1, 0)
			gs.Player.X = tt.playerX
			gs.PowerUps.CreateEntity(components.PowerUp{X: 0, Y: 740, Width: 400, Height: 20, Type: components.PowerUpAdd})
			gs.PowerUps.CreateEntity(components.PowerUp{X: 400, Y: 740, Width: 400, Height: 20, Type: components.PowerUpMultiply})

			NewPhysicsSystem(gs, cfg, nil).Update()

			if gs.Player.PlayersCount != tt.expectedCount {
				t.Errorf("PlayersCount = %d, expected %d", gs.Player.PlayersCount, tt.expectedCount)
			}
			if gs.PowerUps.Len() != tt.remaining {
				t.Errorf("PowerUps.Len() = %d, expected %d", gs.PowerUps.Len(), tt.remaining)
			}
		})
	}
}

// TestPowerUpOnlyBaseShip 道具只与基准飞船检测，副本不参与
func TestPowerUpOnlyBaseShip(t *testing.T) {
	gs, cfg := newTestState(1, 0)
	gs.Player.X = 420
	gs.Player.PlayersCount = 2 // 副本在 x=390，与加法道具重叠
	gs.PowerUps.CreateEntity(components.PowerUp{X: 0, Y: 740, Width: 400, Height: 20, Type: components.PowerUpAdd})

	NewPhysicsSystem(gs, cfg, nil).Update()

	if gs.Player.PlayersCount != 2 || gs.PowerUps.Len() != 1 {
		t.Errorf("PlayersCount = %d, PowerUps.Len() = %d, expected 2 and 1",
			gs.Player.PlayersCount, gs.PowerUps.Len())
	}
	gs.PowerUps.Each(func(_ ecs.EntityID, p *components.PowerUp) {
		if p.Type != components.PowerUpAdd {
			t.Errorf("unexpected power-up %s", p.Type)
		}
	})
}

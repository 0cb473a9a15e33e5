package systems

import (
	"log"

	"github.com/decker502/skyshooter/pkg/components"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/ecs"
	"github.com/decker502/skyshooter/pkg/game"
)

// CombatListener 接收战斗结果的回调
// 由 LevelSystem 实现
type CombatListener interface {
	// UpdateScore 分数变化后刷新分数显示
	UpdateScore()
	// OnBossDefeated 首领被击败（已清除首领并加分）
	OnBossDefeated()
}

// PhysicsSystem 处理碰撞检测
//
// 检测顺序：子弹×敌人 → 子弹×首领 → 玩家×道具。
// 遍历中只做删除标记，整轮结束后统一压缩，
// 被标记的子弹或敌人在本轮剩余检测中被跳过，不会重复计分。
type PhysicsSystem struct {
	gameState *game.GameState
	config    *config.GameConfig
	listener  CombatListener
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - gs: 游戏状态
//   - cfg: 游戏配置（计分）
//   - listener: 战斗结果回调，可为 nil
func NewPhysicsSystem(gs *game.GameState, cfg *config.GameConfig, listener CombatListener) *PhysicsSystem {
	return &PhysicsSystem{
		gameState: gs,
		config:    cfg,
		listener:  listener,
	}
}

// Update 执行本帧的全部碰撞检测
func (ps *PhysicsSystem) Update() {
	ps.checkEnemyCollisions()
	ps.checkBossCollisions()
	ps.checkPowerUpCollisions()
}

// bulletHits 子弹命中检测
//
// 只比较子弹顶点与目标：子弹Y在目标底边之上，且子弹X严格落在目标左右边之间。
// 不考虑子弹自身高度和目标顶边，子弹从下方穿入即算命中。
func bulletHits(b *components.Bullet, target components.Rect) bool {
	return b.Y < target.Bottom() &&
		b.X > target.X &&
		b.X < target.Right()
}

// checkEnemyCollisions 子弹与敌人
// 外层按发射顺序遍历子弹，内层按生成顺序遍历敌人，一颗子弹最多击毁一个敌人
func (ps *PhysicsSystem) checkEnemyCollisions() {
	bullets := ps.gameState.Player.Bullets
	enemies := ps.gameState.Enemies

	bullets.Each(func(bulletID ecs.EntityID, bullet *components.Bullet) {
		for _, enemyID := range enemies.IDs() {
			if !enemies.IsAlive(enemyID) {
				continue
			}
			enemy, _ := enemies.Get(enemyID)
			if !bulletHits(bullet, enemy.Bounds()) {
				continue
			}

			enemies.DestroyEntity(enemyID)
			bullets.DestroyEntity(bulletID)
			ps.gameState.AddPoints(ps.config.Scoring.EnemyPoints)
			ps.notifyScore()
			return
		}
	})

	bullets.RemoveMarkedEntities()
	enemies.RemoveMarkedEntities()
}

// checkBossCollisions 子弹与首领
// 每次命中首领血量 -1 并移除子弹；血量归零时清除首领、加分并通知升级倒计时
func (ps *PhysicsSystem) checkBossCollisions() {
	bullets := ps.gameState.Player.Bullets

	bullets.Each(func(bulletID ecs.EntityID, bullet *components.Bullet) {
		boss := ps.gameState.Boss
		if boss == nil || !bulletHits(bullet, boss.Bounds()) {
			return
		}

		boss.Health--
		bullets.DestroyEntity(bulletID)
		if boss.Health > 0 {
			return
		}

		ps.gameState.Boss = nil
		ps.gameState.AddPoints(ps.config.Scoring.BossPoints)
		log.Printf("[PhysicsSystem] Boss defeated (level=%d, points=%d)",
			ps.gameState.CurrentLevel, ps.gameState.Points)
		ps.notifyScore()
		if ps.listener != nil {
			ps.listener.OnBossDefeated()
		}
	})

	bullets.RemoveMarkedEntities()
}

// checkPowerUpCollisions 玩家与道具（完整的四边 AABB 检测，只使用基准飞船）
func (ps *PhysicsSystem) checkPowerUpCollisions() {
	powerUps := ps.gameState.PowerUps
	playerBounds := ps.gameState.Player.Bounds()

	powerUps.Each(func(id ecs.EntityID, p *components.PowerUp) {
		if !p.Bounds().Overlaps(playerBounds) {
			return
		}
		ps.gameState.ApplyPowerUp(p.Type)
		powerUps.DestroyEntity(id)
		log.Printf("[PhysicsSystem] Picked up %s power-up, playersCount=%d",
			p.Type, ps.gameState.Player.PlayersCount)
	})

	powerUps.RemoveMarkedEntities()
}

func (ps *PhysicsSystem) notifyScore() {
	if ps.listener != nil {
		ps.listener.UpdateScore()
	}
}

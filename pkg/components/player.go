package components

import "github.com/decker502/skyshooter/pkg/ecs"

// Player 玩家飞船
//
// PlayersCount 表示同时渲染、同时射击的飞船副本数量，
// 副本以 Spacing 为间距从基准位置向左排列。
// 碰撞检测只使用基准位置的那一架。
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // 每帧水平移动距离
	Spacing       float64 // 副本间距
	PlayersCount  int     // >= 1，整局只增不减

	// 玩家发射的子弹，按发射顺序保存
	Bullets *ecs.Store[Bullet]
}

// Bounds 返回基准飞船的碰撞盒
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// CopyX 返回第 i 个副本的X坐标（i=0 为基准飞船）
func (p *Player) CopyX(i int) float64 {
	return p.X - float64(i)*p.Spacing
}

package components

// Bullet 玩家子弹，垂直向上飞行
type Bullet struct {
	X, Y          float64
	Width, Height float64
}

// Bounds 返回子弹的碰撞盒
func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

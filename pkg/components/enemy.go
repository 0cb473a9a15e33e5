package components

// Enemy 普通敌人，整波生成后向下移动
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // 每帧下落距离
}

// Bounds 返回敌人的碰撞盒
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

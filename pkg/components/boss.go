package components

// Boss 关底首领
// 同一时刻最多存在一个，由 GameState.Boss 指针表示（nil 为不存在）
type Boss struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Health        int // 被子弹命中一次减 1，<= 0 时被击败
}

// Bounds 返回首领的碰撞盒
func (b *Boss) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

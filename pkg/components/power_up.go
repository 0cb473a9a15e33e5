package components

// PowerUpType 道具类型
type PowerUpType int

const (
	// PowerUpAdd 拾取后飞船副本 +2
	PowerUpAdd PowerUpType = iota
	// PowerUpMultiply 拾取后飞船副本 ×2
	PowerUpMultiply
)

// String 返回道具类型名称
func (t PowerUpType) String() string {
	switch t {
	case PowerUpAdd:
		return "add"
	case PowerUpMultiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// Label 返回道具上显示的效果文字
func (t PowerUpType) Label() string {
	if t == PowerUpAdd {
		return "+2 Players"
	}
	return "x2 Players"
}

// Apply 返回拾取道具后的飞船副本数量
func (t PowerUpType) Apply(playersCount int) int {
	switch t {
	case PowerUpAdd:
		return playersCount + 2
	case PowerUpMultiply:
		return playersCount * 2
	default:
		return playersCount
	}
}

// PowerUp 道具，横跨大半个场地缓慢下落
type PowerUp struct {
	X, Y          float64
	Width, Height float64
	Type          PowerUpType
}

// Bounds 返回道具的碰撞盒
func (p *PowerUp) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

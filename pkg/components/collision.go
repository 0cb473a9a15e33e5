package components

// Rect 定义实体的轴对齐碰撞边界框
// 坐标为左上角，Y 轴向下
type Rect struct {
	X      float64 // 左边界X（逻辑单位）
	Y      float64 // 上边界Y（逻辑单位）
	Width  float64 // 宽度
	Height float64 // 高度
}

// Right 返回右边界X
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 返回下边界Y
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps 完整的 AABB 四边重叠检测（严格不等式，边缘相接不算重叠）
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Bottom() &&
		r.Bottom() > o.Y
}

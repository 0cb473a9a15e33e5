package game

import "image/color"

// TextStyle 文字样式，Size 对应 CSS 像素字号（如 "20px"）
type TextStyle struct {
	Size float64
}

// Renderer 绘图表面
//
// 核心逻辑每帧对每个可见实体调用一次。坐标为场地逻辑坐标，
// FillText 的 y 是文字基线位置。
type Renderer interface {
	Clear(x, y, width, height float64)
	FillRect(x, y, width, height float64, clr color.Color)
	FillText(text string, x, y float64, style TextStyle, clr color.Color)
}

// InputState 左右移动意图，按下为 true，抬起为 false
type InputState interface {
	MoveLeft() bool
	MoveRight() bool
}

// TextSink 文字输出（分数、倒计时）
type TextSink interface {
	SetText(text string)
}

// SaveSlot 持久化键值存储
// Load 在键不存在或读取失败时返回 ok=false
type SaveSlot interface {
	Load(key string) (value string, ok bool)
	Save(key, value string) error
	Clear() error
}

// TextLabel 内存中的 TextSink，供前端每帧读取并绘制
type TextLabel struct {
	text string
}

// SetText 设置文字
func (l *TextLabel) SetText(text string) {
	l.text = text
}

// Text 返回当前文字
func (l *TextLabel) Text() string {
	return l.text
}

package utils

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

type direction int

const (
	dirLeft direction = iota
	dirRight
)

// TerminalInput 终端上的移动意图
//
// 终端只有按键事件没有抬起事件，按住方向键时依靠系统的按键重复。
// 每次按键后，该方向在 hold 时间内保持按下状态。
// 按键事件与 Update 必须在同一个 goroutine 上调用。
type TerminalInput struct {
	hold      time.Duration
	now       time.Time
	lastPress map[direction]time.Time
}

// NewTerminalInput 创建终端输入状态
func NewTerminalInput(hold time.Duration) *TerminalInput {
	return &TerminalInput{
		hold:      hold,
		lastPress: make(map[direction]time.Time),
	}
}

// HandleKey 处理按键事件
//
// 返回：
//   - bool: 是否是方向键（已处理）
func (i *TerminalInput) HandleKey(ev *tcell.EventKey) bool {
	dir, ok := keyDirection(ev)
	if !ok {
		return false
	}
	i.lastPress[dir] = ev.When()
	return true
}

// Update 设置当前时刻，每帧调用一次
func (i *TerminalInput) Update(now time.Time) {
	i.now = now
}

// MoveLeft 是否按住向左
func (i *TerminalInput) MoveLeft() bool {
	return i.held(dirLeft)
}

// MoveRight 是否按住向右
func (i *TerminalInput) MoveRight() bool {
	return i.held(dirRight)
}

func (i *TerminalInput) held(dir direction) bool {
	last, ok := i.lastPress[dir]
	return ok && i.now.Sub(last) < i.hold
}

// keyDirection 方向键、a/d、h/l 映射为移动方向
func keyDirection(ev *tcell.EventKey) (direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return dirLeft, true
		case 'd', 'D', 'l':
			return dirRight, true
		}
	}
	return 0, false
}

// IsQuitKey Esc、Ctrl-C 或 q 退出
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return ev.Rune() == 'c'
		}
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

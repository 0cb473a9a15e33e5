// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// 向左、向右移动的按键
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// TouchSide 触摸点所在的半边屏幕
type TouchSide int

const (
	// TouchNone 没有触摸
	TouchNone TouchSide = iota
	// TouchLeft 左半边
	TouchLeft
	// TouchRight 右半边
	TouchRight
)

// SideOf 判断 x 位于宽度为 width 的屏幕的哪半边
// 正中间算右半边
func SideOf(x, width int) TouchSide {
	if x < width/2 {
		return TouchLeft
	}
	return TouchRight
}

// EbitenInput 键盘与触摸屏的移动意图
//
// 桌面端使用方向键或 A/D；移动端按住屏幕左半边向左、右半边向右。
// 实现 game.InputState，每次查询都读取当前帧的按键状态。
type EbitenInput struct {
	screenWidth int // 逻辑屏幕宽度，用于划分左右半边
}

// NewEbitenInput 创建输入状态
func NewEbitenInput(screenWidth int) *EbitenInput {
	return &EbitenInput{screenWidth: screenWidth}
}

// MoveLeft 是否按住向左
func (i *EbitenInput) MoveLeft() bool {
	return isAnyKeyPressed(leftKeys) || i.isTouching(TouchLeft)
}

// MoveRight 是否按住向右
func (i *EbitenInput) MoveRight() bool {
	return isAnyKeyPressed(rightKeys) || i.isTouching(TouchRight)
}

// isTouching 是否有触摸点落在指定半边
// 多指触摸时两边可以同时生效
func (i *EbitenInput) isTouching(side TouchSide) bool {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		if SideOf(x, i.screenWidth) == side {
			return true
		}
	}
	return false
}

func isAnyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Package render 提供 game.Renderer 的具体实现
//
// EbitenRenderer 绘制到离屏图像，供桌面端和移动端每帧贴到屏幕上；
// TerminalRenderer 把场地缩放到终端字符网格上。
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/skyshooter/pkg/game"
)

// EbitenRenderer 在离屏图像上实现 game.Renderer
//
// 游戏循环只在 Update 中绘制，Draw 时把离屏图像贴到屏幕上，
// 因此未被清除的内容（如 "Game Over"）会一直保留。
type EbitenRenderer struct {
	target     *ebiten.Image
	faceSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace // 按字号缓存
}

// NewEbitenRenderer 创建指定尺寸的离屏渲染器
func NewEbitenRenderer(width, height int) (*EbitenRenderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &EbitenRenderer{
		target:     ebiten.NewImage(width, height),
		faceSource: source,
		faces:      make(map[float64]*text.GoTextFace),
	}, nil
}

// Image 返回离屏图像
func (r *EbitenRenderer) Image() *ebiten.Image {
	return r.target
}

// Clear 把区域恢复为透明
func (r *EbitenRenderer) Clear(x, y, w, h float64) {
	rect := pixelRect(x, y, w, h).Intersect(r.target.Bounds())
	if rect.Empty() {
		return
	}
	r.target.SubImage(rect).(*ebiten.Image).Clear()
}

// FillRect 填充矩形
func (r *EbitenRenderer) FillRect(x, y, w, h float64, clr color.Color) {
	ebitenutil.DrawRect(r.target, x, y, w, h, clr)
}

// FillText 绘制文字，y 为基线位置
func (r *EbitenRenderer) FillText(s string, x, y float64, style game.TextStyle, clr color.Color) {
	face := r.face(style.Size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.target, s, face, op)
}

// face 返回指定字号的字体，首次使用时创建
func (r *EbitenRenderer) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = defaultTextSize
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    r.faceSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	r.faces[size] = f
	return f
}

// defaultTextSize 未指定字号时使用的字号
const defaultTextSize = 16

// pixelRect 把浮点矩形扩展为覆盖它的整数像素矩形
func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)),
		int(math.Floor(y)),
		int(math.Ceil(x+w)),
		int(math.Ceil(y+h)),
	)
}

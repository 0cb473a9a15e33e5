package render

import (
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

// HUD 文字使用位图字体，倒计时数字放大显示
var hudFace = text.NewGoXFace(bitmapfont.Face)

const (
	hudMargin      = 10
	countdownScale = 6
)

// DrawHUD 在屏幕上绘制分数（左上角）与倒计时（居中）
// 空字符串不绘制
func DrawHUD(screen *ebiten.Image, score, countdown string) {
	if score != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin, hudMargin)
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, score, hudFace, op)
	}

	if countdown != "" {
		w, h := text.Measure(countdown, hudFace, 0)
		bounds := screen.Bounds()

		op := &text.DrawOptions{}
		op.GeoM.Scale(countdownScale, countdownScale)
		op.GeoM.Translate(
			float64(bounds.Dx())/2-w*countdownScale/2,
			float64(bounds.Dy())/2-h*countdownScale/2,
		)
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, countdown, hudFace, op)
	}
}

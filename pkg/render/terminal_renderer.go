package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skyshooter/pkg/game"
)

// hudRows 终端顶部留给 HUD 的行数
const hudRows = 1

// blockRune 填充矩形使用的字符
const blockRune = '█'

// TerminalRenderer 把场地坐标缩放到终端字符网格上
//
// 第 0 行是 HUD，场地占据其余的行。场地外的部分被裁掉。
// 每次绘制后需要调用 Show 刷新屏幕。
type TerminalRenderer struct {
	screen tcell.Screen
	width  float64 // 场地宽度（像素）
	height float64 // 场地高度（像素）
}

// NewTerminalRenderer 创建终端渲染器
func NewTerminalRenderer(screen tcell.Screen, fieldWidth, fieldHeight float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		width:  fieldWidth,
		height: fieldHeight,
	}
}

// grid 返回场地所占的列数与行数
func (r *TerminalRenderer) grid() (cols, rows int) {
	w, h := r.screen.Size()
	return w, h - hudRows
}

// cellRange 把场地上的 [x, x+w) × [y, y+h) 映射为字符单元范围（闭区间，已裁剪）
// 返回 ok=false 表示完全在屏幕外
func (r *TerminalRenderer) cellRange(x, y, w, h float64) (c0, r0, c1, r1 int, ok bool) {
	cols, rows := r.grid()
	if cols <= 0 || rows <= 0 {
		return 0, 0, 0, 0, false
	}
	sx := float64(cols) / r.width
	sy := float64(rows) / r.height

	c0 = int(math.Floor(x * sx))
	r0 = int(math.Floor(y * sy))
	c1 = int(math.Ceil((x+w)*sx)) - 1
	r1 = int(math.Ceil((y+h)*sy)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}

	c0, c1 = max(c0, 0), min(c1, cols-1)
	r0, r1 = max(r0, 0), min(r1, rows-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

// Clear 清空区域
func (r *TerminalRenderer) Clear(x, y, w, h float64) {
	c0, r0, c1, r1, ok := r.cellRange(x, y, w, h)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row+hudRows, ' ', nil, tcell.StyleDefault)
		}
	}
}

// FillRect 用色块填充矩形覆盖的所有字符单元
func (r *TerminalRenderer) FillRect(x, y, w, h float64, clr color.Color) {
	c0, r0, c1, r1, ok := r.cellRange(x, y, w, h)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(ToTcellColor(clr))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row+hudRows, blockRune, nil, style)
		}
	}
}

// FillText 从基线所在的字符行开始写文字，字号在终端上没有意义
func (r *TerminalRenderer) FillText(s string, x, y float64, _ game.TextStyle, clr color.Color) {
	cols, rows := r.grid()
	if cols <= 0 || rows <= 0 {
		return
	}
	col := int(math.Floor(x * float64(cols) / r.width))
	row := int(math.Floor(y * float64(rows) / r.height))
	if row < 0 || row >= rows {
		return
	}
	r.putString(col, row+hudRows, s, tcell.StyleDefault.Foreground(ToTcellColor(clr)))
}

// DrawHUD 在第 0 行绘制分数（左侧）与倒计时（居中）
func (r *TerminalRenderer) DrawHUD(score, countdown string) {
	cols, _ := r.screen.Size()
	for col := 0; col < cols; col++ {
		r.screen.SetContent(col, 0, ' ', nil, tcell.StyleDefault)
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.putString(0, 0, score, style)
	if countdown != "" {
		r.putString(cols/2-len(countdown)/2, 0, countdown, style.Bold(true))
	}
}

// Show 把缓冲区刷新到终端
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

func (r *TerminalRenderer) putString(col, row int, s string, style tcell.Style) {
	cols, _ := r.screen.Size()
	for _, ch := range s {
		if col >= cols {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

// ToTcellColor 把 image/color 颜色转换为终端真彩色
func ToTcellColor(clr color.Color) tcell.Color {
	cr, cg, cb, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
}

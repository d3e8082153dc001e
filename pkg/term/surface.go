// Package term 在终端中运行粒子效果（tcell 宿主）
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// 粒子字形，按视觉重量从轻到重排列
const (
	glyphDot    = '·'
	glyphBullet = '•'
	glyphCircle = '●'
	glyphBlock  = '█'
)

// Surface 将 tcell.Screen 适配为 systems.Surface
//
// 世界坐标以"像素"为单位，每个字符单元对应 CellWidth x CellHeight 个世界单位，
// 这样粒子速度和尺寸与窗口宿主保持一致。
type Surface struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64
	background tcell.Style
	reserved   int // 底部保留给状态栏的行数
}

// NewSurface 创建终端表面
func NewSurface(screen tcell.Screen, cellWidth, cellHeight float64, background color.RGBA) *Surface {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &Surface{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		background: tcell.StyleDefault.Background(toTcellColor(background)),
		reserved:   1,
	}
}

// Size 返回可绘制区域的世界尺寸（不含状态栏）
func (s *Surface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	rows -= s.reserved
	if rows < 0 {
		rows = 0
	}
	return float64(cols) * s.cellWidth, float64(rows) * s.cellHeight
}

// Clear 清除覆盖矩形区域的所有字符单元
func (s *Surface) Clear(x, y, width, height float64) {
	c0, r0 := s.ToCell(x, y)
	c1, r1 := s.ToCell(x+width, y+height)
	cols, rows := s.screen.Size()
	for r := max(r0, 0); r <= r1 && r < rows-s.reserved; r++ {
		for c := max(c0, 0); c <= c1 && c < cols; c++ {
			s.screen.SetContent(c, r, ' ', nil, s.background)
		}
	}
}

// FillCircle 绘制实心圆
//
// 半径小于一个字符单元时按尺寸选择字形；否则填充圆心落在圆内的所有单元。
// 不会用更轻的字形覆盖同一帧中已绘制的更重字形。
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	style := s.background.Foreground(toTcellColor(clr))

	if radius*2 < s.cellHeight {
		col, row := s.ToCell(cx, cy)
		s.put(col, row, glyphFor(radius, s.cellWidth), style)
		return
	}

	c0, r0 := s.ToCell(cx-radius, cy-radius)
	c1, r1 := s.ToCell(cx+radius, cy+radius)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			mx := (float64(c) + 0.5) * s.cellWidth
			my := (float64(r) + 0.5) * s.cellHeight
			if math.Hypot(mx-cx, my-cy) <= radius {
				s.put(c, r, glyphBlock, style)
			}
		}
	}
}

// ToCell 世界坐标转字符单元坐标
func (s *Surface) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / s.cellWidth)), int(math.Floor(y / s.cellHeight))
}

// ToWorld 字符单元中心的世界坐标
func (s *Surface) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellWidth, (float64(row) + 0.5) * s.cellHeight
}

func (s *Surface) put(col, row int, glyph rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows-s.reserved {
		return
	}
	existing, _, _, _ := s.screen.GetContent(col, row)
	if glyphWeight(existing) > glyphWeight(glyph) {
		return
	}
	s.screen.SetContent(col, row, glyph, nil, style)
}

// glyphFor 按半径与字符单元的比例选择字形
func glyphFor(radius, cellWidth float64) rune {
	switch {
	case radius*2 >= cellWidth:
		return glyphCircle
	case radius*4 >= cellWidth:
		return glyphBullet
	default:
		return glyphDot
	}
}

func glyphWeight(r rune) int {
	switch r {
	case glyphDot:
		return 1
	case glyphBullet:
		return 2
	case glyphCircle:
		return 3
	case glyphBlock:
		return 4
	}
	return 0
}

func toTcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 将 Ebitengine 的帧图像适配为 systems.Surface
//
// 每次 Draw 前由 App 调用 SetTarget 设置当前帧的屏幕图像；
// 未设置目标时所有绘制操作都是空操作，尺寸为 0。
type EbitenSurface struct {
	target     *ebiten.Image
	background color.RGBA
}

// NewEbitenSurface 创建表面适配器
func NewEbitenSurface(background color.RGBA) *EbitenSurface {
	return &EbitenSurface{background: background}
}

// SetTarget 设置当前帧的绘制目标
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Size 返回目标图像尺寸
func (s *EbitenSurface) Size() (float64, float64) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear 用背景色填充矩形区域
func (s *EbitenSurface) Clear(x, y, width, height float64) {
	if s.target == nil {
		return
	}
	w, h := s.Size()
	if x <= 0 && y <= 0 && width >= w && height >= h {
		s.target.Fill(s.background)
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(width), float32(height), s.background, false)
}

// FillCircle 绘制抗锯齿实心圆
func (s *EbitenSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	if s.target == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(radius), clr, true)
}

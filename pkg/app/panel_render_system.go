package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/ecs"
)

var (
	panelBackground = color.RGBA{R: 255, G: 255, B: 255, A: 204}
	panelShadow     = color.RGBA{A: 96}
	panelText       = color.RGBA{A: 255}
	slotColor       = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	slotFillColor   = color.RGBA{R: 51, G: 117, B: 255, A: 255}
	knobColor       = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	knobActiveColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// PanelRenderSystem 绘制参数面板（半透明背景、标签、滑槽、滑块、数值）
type PanelRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewPanelRenderSystem 创建面板渲染系统
func NewPanelRenderSystem(em *ecs.EntityManager) *PanelRenderSystem {
	return &PanelRenderSystem{entityManager: em}
}

// Draw 绘制面板，应在粒子之后调用（面板覆盖在画布之上）
func (s *PanelRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)
	if len(entities) == 0 {
		return
	}

	px, py, pw, ph := config.PanelBounds(len(entities))
	vector.DrawFilledRect(screen, float32(px+3), float32(py+3), float32(pw), float32(ph), panelShadow, false)
	vector.DrawFilledRect(screen, float32(px), float32(py), float32(pw), float32(ph), panelBackground, false)

	face := basicfont.Face7x13
	for _, id := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if slider == nil || pos == nil {
			continue
		}

		// 文字基线与滑槽垂直居中对齐
		baseline := int(pos.Y + slider.SlotHeight/2 + float64(face.Ascent)/2)

		text.Draw(screen, slider.Label+":", face, int(px+config.PanelPadding), baseline, panelText)

		slotY := pos.Y + slider.SlotHeight/2 - 2
		vector.DrawFilledRect(screen, float32(pos.X), float32(slotY), float32(slider.SlotWidth), 4, slotColor, false)

		filled := slider.SlotWidth * slider.Fraction()
		vector.DrawFilledRect(screen, float32(pos.X), float32(slotY), float32(filled), 4, slotFillColor, false)

		knob := knobColor
		if slider.IsDragging || slider.IsHovered {
			knob = knobActiveColor
		}
		knobX := pos.X + filled - slider.KnobWidth/2
		vector.DrawFilledRect(screen, float32(knobX), float32(pos.Y), float32(slider.KnobWidth), float32(slider.SlotHeight), knob, true)

		valueX := int(pos.X + slider.SlotWidth + config.PanelPadding)
		text.Draw(screen, fmt.Sprintf("%.2f", slider.Value), face, valueX, baseline, panelText)
	}
}

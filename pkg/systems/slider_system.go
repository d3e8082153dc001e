package systems

import (
	"math"

	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/ecs"
)

// SliderSystem 滑块交互系统
// 负责处理参数面板中滑块的鼠标拖拽交互
//
// 职责：
//   - 检测鼠标是否在滑槽区域内
//   - 检测鼠标左键按下/拖拽状态（只有在滑槽内按下才开始拖拽）
//   - 将指针位置转换为 [Min, Max] 中按 Step 量化的值
//   - 更新 SliderComponent.Value 并调用 OnValueChange 回调
type SliderSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    PointerInput
	wasPressed    bool
}

// NewSliderSystem 创建滑块交互系统
func NewSliderSystem(em *ecs.EntityManager, input PointerInput) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新滑块交互状态
func (s *SliderSystem) Update() {
	mouseX, mouseY := 0, 0
	mousePressed := false
	if s.mouseInput != nil {
		mousePressed, mouseX, mouseY = s.mouseInput.PointerState()
	}
	justPressed := mousePressed && !s.wasPressed
	s.wasPressed = mousePressed

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if slider == nil || pos == nil {
			continue
		}

		isInSlot := isPointInRect(float64(mouseX), float64(mouseY), pos.X, pos.Y, slider.SlotWidth, slider.SlotHeight)
		slider.IsHovered = isInSlot

		if !mousePressed {
			slider.IsDragging = false
			continue
		}

		if justPressed && isInSlot {
			slider.IsDragging = true
		}
		if !slider.IsDragging {
			continue
		}

		newValue := SliderValueAt(slider, float64(mouseX)-pos.X)
		if newValue != slider.Value {
			slider.Value = newValue
			if slider.OnValueChange != nil {
				slider.OnValueChange(newValue)
			}
		}
	}
}

// Captures 坐标是否位于参数面板内（实现 PointerCapture）
func (s *SliderSystem) Captures(x, y float64) bool {
	rows := len(ecs.GetEntitiesWith1[*components.SliderComponent](s.entityManager))
	if rows == 0 {
		return false
	}
	px, py, pw, ph := config.PanelBounds(rows)
	return isPointInRect(x, y, px, py, pw, ph)
}

// SliderValueAt 计算滑槽内偏移 offsetX 处对应的值（量化并限制在范围内）
func SliderValueAt(slider *components.SliderComponent, offsetX float64) float64 {
	if slider.SlotWidth <= 0 || slider.Max <= slider.Min {
		return slider.Min
	}

	fraction := offsetX / slider.SlotWidth
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	value := slider.Min + fraction*(slider.Max-slider.Min)
	if slider.Step > 0 {
		value = slider.Min + math.Round((value-slider.Min)/slider.Step)*slider.Step
		// 去掉浮点误差（如 0.30000000000000004）
		value = math.Round(value*1e9) / 1e9
	}

	if value < slider.Min {
		value = slider.Min
	}
	if value > slider.Max {
		value = slider.Max
	}
	return value
}

func isPointInRect(px, py, x, y, width, height float64) bool {
	return px >= x && px <= x+width && py >= y && py <= y+height
}

// Package entities 提供界面实体的工厂函数
package entities

import (
	"fmt"
	"log"

	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/ecs"
)

// ParameterSink 可读写可调参数的对象（通常是 systems.ParticleSystem）
type ParameterSink interface {
	Parameter(name config.ParameterName) (float64, error)
	SetParameter(name config.ParameterName, value float64) error
}

// NewParameterSlider 创建绑定到单个参数的滑动条实体
//
// 参数：
//   - em: 实体管理器
//   - sink: 参数读写对象，滑动条的值变化时调用 SetParameter
//   - name: 参数名称（必须在 config.ParameterRanges 中）
//   - row: 面板中的行号（从 0 开始）
//
// 返回：
//   - 滑动条实体ID
//   - 错误信息（未知参数）
func NewParameterSlider(em *ecs.EntityManager, sink ParameterSink, name config.ParameterName, row int) (ecs.EntityID, error) {
	r, ok := config.ParameterRanges[name]
	if !ok {
		return 0, fmt.Errorf("no slider range for %q: %w", string(name), config.ErrUnknownParameter)
	}

	current, err := sink.Parameter(name)
	if err != nil {
		return 0, err
	}

	entity := em.CreateEntity()

	x, y := config.SliderSlotPosition(row)
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.SliderComponent{
		SlotWidth:  config.SliderSlotWidth,
		SlotHeight: config.SliderSlotHeight,
		KnobWidth:  config.SliderKnobWidth,
		Min:        r.Min,
		Max:        r.Max,
		Step:       r.Step,
		Value:      r.Clamp(current),
		Label:      r.Label,
		OnValueChange: func(value float64) {
			if err := sink.SetParameter(name, value); err != nil {
				log.Printf("[ParameterSlider] failed to set %s: %v", name, err)
			}
		},
	})
	ecs.AddComponent(em, entity, &components.ParameterBindingComponent{Name: name})

	return entity, nil
}

// NewParameterPanel 按 config.ParameterNames 的顺序创建全部滑动条
func NewParameterPanel(em *ecs.EntityManager, sink ParameterSink) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(config.ParameterNames))
	for row, name := range config.ParameterNames {
		id, err := NewParameterSlider(em, sink, name, row)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	log.Printf("[ParameterPanel] created %d sliders", len(ids))
	return ids, nil
}

// SyncParameterSliders 将滑动条显示值同步为 sink 中的当前参数
// 用于参数被键盘等其他途径修改之后
func SyncParameterSliders(em *ecs.EntityManager, sink ParameterSink) {
	for _, id := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.ParameterBindingComponent](em) {
		slider, _ := ecs.GetComponent[*components.SliderComponent](em, id)
		binding, _ := ecs.GetComponent[*components.ParameterBindingComponent](em, id)
		if slider == nil || binding == nil || slider.IsDragging {
			continue
		}
		if v, err := sink.Parameter(binding.Name); err == nil {
			r := config.ParameterRanges[binding.Name]
			slider.Value = r.Clamp(v)
		}
	}
}

package components

import "github.com/decker502/sparks/pkg/config"

// SliderComponent 滑动条组件
// 用于参数面板中调整单个数值参数（重力、风力、吸引强度）
type SliderComponent struct {
	// 滑动条尺寸
	SlotWidth  float64 // 滑槽宽度
	SlotHeight float64 // 滑槽高度
	KnobWidth  float64 // 滑块宽度

	// 取值范围与步长
	Min  float64
	Max  float64
	Step float64 // 0 表示不量化

	// 当前值（位于 [Min, Max] 内）
	Value float64

	// 标签文字
	Label string

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否鼠标悬停

	// 回调函数
	OnValueChange func(value float64) // 值改变时的回调
}

// Fraction 当前值在 [Min, Max] 中的比例（0.0 ~ 1.0）
func (s *SliderComponent) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	f := (s.Value - s.Min) / (s.Max - s.Min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ParameterBindingComponent 记录滑动条绑定的参数名
type ParameterBindingComponent struct {
	Name config.ParameterName
}

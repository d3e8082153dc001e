package config

import (
	"errors"
	"fmt"
)

// ParameterName 可调参数名称
type ParameterName string

const (
	ParamGravity         ParameterName = "gravity"
	ParamWind            ParameterName = "wind"
	ParamAttractStrength ParameterName = "attractStrength"
)

// ParameterNames 所有参数名称（面板显示顺序）
var ParameterNames = []ParameterName{ParamGravity, ParamWind, ParamAttractStrength}

// ErrUnknownParameter 未知的参数名称
var ErrUnknownParameter = errors.New("unknown parameter")

// Parameters 运行时可调的物理参数
// 任意实数都会被接受，超出界面范围只会让运动更夸张
type Parameters struct {
	Gravity         float64 `yaml:"gravity"`
	Wind            float64 `yaml:"wind"`
	AttractStrength float64 `yaml:"attractStrength"`
}

// DefaultParameters 返回默认参数
func DefaultParameters() Parameters {
	return Parameters{
		Gravity:         0.1,
		Wind:            0.01,
		AttractStrength: 0.05,
	}
}

// Get 按名称读取参数
func (p Parameters) Get(name ParameterName) (float64, error) {
	switch name {
	case ParamGravity:
		return p.Gravity, nil
	case ParamWind:
		return p.Wind, nil
	case ParamAttractStrength:
		return p.AttractStrength, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, string(name))
}

// Set 按名称写入参数
func (p *Parameters) Set(name ParameterName, value float64) error {
	switch name {
	case ParamGravity:
		p.Gravity = value
	case ParamWind:
		p.Wind = value
	case ParamAttractStrength:
		p.AttractStrength = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParameter, string(name))
	}
	return nil
}

// ParameterRange 界面控件的取值范围
// 这只是界面约束，核心逻辑接受任意实数
type ParameterRange struct {
	Label string
	Min   float64
	Max   float64
	Step  float64
}

// ParameterRanges 参数面板每个滑动条的范围
var ParameterRanges = map[ParameterName]ParameterRange{
	ParamGravity:         {Label: "Gravity", Min: 0, Max: 1, Step: 0.01},
	ParamWind:            {Label: "Wind", Min: 0, Max: 0.1, Step: 0.01},
	ParamAttractStrength: {Label: "Attract Strength", Min: 0, Max: 1, Step: 0.01},
}

// Clamp 将值限制在范围内
func (r ParameterRange) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// ParticleConfig 粒子效果配置
//
// 可以从 YAML 文件加载，文件中未出现的字段保持 DefaultParticleConfig 的默认值。
type ParticleConfig struct {
	MaxParticles int     `yaml:"maxParticles"` // 同时存活的粒子上限（超出时淘汰最旧的粒子）
	EmitPerMove  int     `yaml:"emitPerMove"`  // 按下状态下每次指针移动生成的粒子数
	TrailLength  int     `yaml:"trailLength"`  // 每个粒子保留的轨迹快照数
	DecayRate    float64 `yaml:"decayRate"`    // 每帧尺寸衰减系数
	MinSize      float64 `yaml:"minSize"`      // 尺寸低于此值时钳制为 0
	SizeMin      float64 `yaml:"sizeMin"`      // 初始尺寸下界（含）
	SizeMax      float64 `yaml:"sizeMax"`      // 初始尺寸上界（不含）
	SpeedRange   float64 `yaml:"speedRange"`   // 初始速度分量取值 [-SpeedRange, SpeedRange)

	Palette    []string `yaml:"palette"`    // 十六进制颜色，如 "#FF5733"
	Background string   `yaml:"background"` // 清屏颜色

	Parameters Parameters `yaml:"parameters"` // 可调参数的初始值
}

// DefaultPalette 默认 8 色调色板
var DefaultPalette = []string{
	"#FF5733", "#FFBD33", "#75FF33", "#33FF57",
	"#33FFBD", "#3375FF", "#5733FF", "#BD33FF",
}

// DefaultParticleConfig 返回默认配置
func DefaultParticleConfig() *ParticleConfig {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return &ParticleConfig{
		MaxParticles: 500,
		EmitPerMove:  5,
		TrailLength:  MaxTrailLength,
		DecayRate:    0.97,
		MinSize:      0.2,
		SizeMin:      2,
		SizeMax:      7,
		SpeedRange:   2.5,
		Palette:      palette,
		Background:   "#000000",
		Parameters:   DefaultParameters(),
	}
}

// LoadParticleConfig 从 YAML 文件加载粒子配置
func LoadParticleConfig(filePath string) (*ParticleConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read particle config file: %w", err)
	}

	cfg, err := ParseParticleConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseParticleConfig 解析 YAML 数据，以默认配置为基础覆盖
func ParseParticleConfig(data []byte) (*ParticleConfig, error) {
	cfg := DefaultParticleConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse particle config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid particle config: %w", err)
	}
	return cfg, nil
}

// MaxTrailLength 每个粒子最多保留的轨迹快照数
const MaxTrailLength = 10

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

// Validate 检查配置的有效性
func (c *ParticleConfig) Validate() error {
	if c.MaxParticles < 1 {
		return fmt.Errorf("%w: maxParticles must be >= 1, got %d", ErrInvalidConfig, c.MaxParticles)
	}
	if c.EmitPerMove < 0 {
		return fmt.Errorf("%w: emitPerMove must be >= 0, got %d", ErrInvalidConfig, c.EmitPerMove)
	}
	if c.TrailLength < 1 || c.TrailLength > MaxTrailLength {
		return fmt.Errorf("%w: trailLength must be in [1, %d], got %d", ErrInvalidConfig, MaxTrailLength, c.TrailLength)
	}
	if c.DecayRate <= 0 || c.DecayRate >= 1 {
		return fmt.Errorf("%w: decayRate must be in (0, 1), got %v", ErrInvalidConfig, c.DecayRate)
	}
	if c.MinSize <= 0 {
		return fmt.Errorf("%w: minSize must be > 0, got %v", ErrInvalidConfig, c.MinSize)
	}
	if c.SizeMin < 0 || c.SizeMax <= c.SizeMin {
		return fmt.Errorf("%w: size range [%v, %v) is empty", ErrInvalidConfig, c.SizeMin, c.SizeMax)
	}
	if c.SpeedRange < 0 {
		return fmt.Errorf("%w: speedRange must be >= 0, got %v", ErrInvalidConfig, c.SpeedRange)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette cannot be empty", ErrInvalidConfig)
	}
	if _, err := ParsePalette(c.Palette); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PaletteColors 返回解析后的调色板
// 配置已经过 Validate 时不会失败
func (c *ParticleConfig) PaletteColors() []color.RGBA {
	colors, err := ParsePalette(c.Palette)
	if err != nil {
		return nil
	}
	return colors
}

// BackgroundColor 返回解析后的清屏颜色，解析失败时为黑色
func (c *ParticleConfig) BackgroundColor() color.RGBA {
	clr, err := ParseHexColor(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return clr
}

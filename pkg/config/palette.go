package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析 "#RRGGBB" 或 "#RGB" 格式的颜色，结果完全不透明
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParsePalette 解析一组十六进制颜色
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	colors := make([]color.RGBA, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHexColor(h)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

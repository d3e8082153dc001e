// Package export 将运行时参数导出为可粘贴进配置文件的 YAML
package export

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/decker502/sparks/pkg/config"
)

// parametersDocument 导出到剪贴板的 YAML 文档结构
// 与 particles.yaml 的 parameters 段兼容，可直接粘贴进配置文件
type parametersDocument struct {
	Parameters config.Parameters `yaml:"parameters"`
}

// MarshalParameters 将参数序列化为 YAML
func MarshalParameters(params config.Parameters) (string, error) {
	data, err := yaml.Marshal(parametersDocument{Parameters: params})
	if err != nil {
		return "", fmt.Errorf("failed to marshal parameters: %w", err)
	}
	return string(data), nil
}

// CopyParametersToClipboard 将当前参数以 YAML 形式写入系统剪贴板
func CopyParametersToClipboard(params config.Parameters) error {
	doc, err := MarshalParameters(params)
	if err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this platform")
	}
	if err := clipboard.WriteAll(doc); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	log.Printf("[Export] parameters copied to clipboard")
	return nil
}

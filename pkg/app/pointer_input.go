package app

import "github.com/decker502/sparks/pkg/utils"

// ebitenPointerInput Ebitengine 默认实现（鼠标 + 触摸）
type ebitenPointerInput struct{}

func (ebitenPointerInput) PointerState() (bool, int, int) {
	return utils.GetPointerState()
}

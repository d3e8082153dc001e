package systems

import "log"

// PointerInput 指针输入接口（鼠标或触摸）
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// PointerState 返回是否按下以及当前坐标
	PointerState() (pressed bool, x, y int)
}

// PointerCapture 可以截获指针事件的界面区域（如参数面板）
// 在该区域内开始的拖拽不会生成粒子
type PointerCapture interface {
	Captures(x, y float64) bool
}

// InputSystem 将指针事件转换为粒子系统的操作
//
// 事件语义：
//   - Move: 记录指针位置；按下状态下在该位置生成 emitCount 个粒子
//   - Down / Up: 切换按下状态
//   - Leave: 指针离开表面，Attract 粒子不再受吸引
//
// 宿主可以直接调用 Handle* 方法（事件驱动，如终端），
// 也可以每帧调用 Update 轮询 PointerInput（如 Ebitengine）。
type InputSystem struct {
	particles *ParticleSystem
	emitCount int
	input     PointerInput
	capture   PointerCapture

	down      bool
	capturing bool // 本次按下发生在截获区域内

	hasLast      bool
	lastX, lastY int
}

// NewInputSystem 创建输入系统
// input 可为 nil（仅使用 Handle* 方法），capture 可为 nil
func NewInputSystem(ps *ParticleSystem, emitCount int, input PointerInput, capture PointerCapture) *InputSystem {
	return &InputSystem{
		particles: ps,
		emitCount: emitCount,
		input:     input,
		capture:   capture,
	}
}

// HandleMove 指针移动到 (x, y)
func (s *InputSystem) HandleMove(x, y float64) {
	s.particles.SetPointer(x, y)
	if s.down && !s.capturing {
		s.particles.Emit(x, y, s.emitCount)
	}
}

// HandleDown 指针在 (x, y) 按下
func (s *InputSystem) HandleDown(x, y float64) {
	s.particles.SetPointer(x, y)
	s.down = true
	s.capturing = s.capture != nil && s.capture.Captures(x, y)
	if s.capturing {
		log.Printf("[InputSystem] press at (%.0f, %.0f) captured by panel", x, y)
	}
}

// HandleUp 指针抬起
func (s *InputSystem) HandleUp() {
	s.down = false
	s.capturing = false
}

// HandleLeave 指针离开绘图表面
func (s *InputSystem) HandleLeave() {
	s.particles.ClearPointer()
	s.hasLast = false
}

// IsDown 当前是否处于按下状态
func (s *InputSystem) IsDown() bool {
	return s.down
}

// Update 轮询 PointerInput，将状态变化转换为 Down/Move/Up 事件
// 同一帧内的处理顺序：按下 → 移动 → 抬起
func (s *InputSystem) Update() {
	if s.input == nil {
		return
	}

	pressed, x, y := s.input.PointerState()
	fx, fy := float64(x), float64(y)

	if pressed && !s.down {
		s.HandleDown(fx, fy)
	}

	if !s.hasLast || x != s.lastX || y != s.lastY {
		s.hasLast = true
		s.lastX, s.lastY = x, y
		s.HandleMove(fx, fy)
	}

	if !pressed && s.down {
		s.HandleUp()
	}
}

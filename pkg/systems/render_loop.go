package systems

import (
	"errors"
	"image/color"
	"log"

	"github.com/decker502/sparks/pkg/components"
)

// Surface 2D 绘图表面
// 由宿主环境提供（Ebitengine 窗口或终端），渲染循环只通过此接口绘制
type Surface interface {
	// Size 返回当前尺寸（每帧读取，窗口缩放后随之变化）
	Size() (width, height float64)
	// Clear 清除矩形区域
	Clear(x, y, width, height float64)
	// FillCircle 绘制实心圆
	FillCircle(cx, cy, radius float64, clr color.Color)
}

// FrameScheduler "下一次显示刷新时回调"的调度原语
// 同一时间只有一个待执行回调
type FrameScheduler interface {
	RequestFrame(fn func())
}

var (
	// ErrNoSurface 绘图表面不可用（致命的启动错误）
	ErrNoSurface = errors.New("drawing surface unavailable")
	// ErrNoParticleSystem 未提供粒子系统
	ErrNoParticleSystem = errors.New("particle system is nil")
	// ErrNoScheduler 未提供帧调度器
	ErrNoScheduler = errors.New("frame scheduler is nil")
)

// TrailSizeFactor 轨迹圆点相对于快照尺寸的比例
const TrailSizeFactor = 0.5

// RenderLoop 驱动持续的动画循环
//
// 每一帧：
//  1. 清除整个绘图表面
//  2. 调用 ParticleSystem.Update()
//  3. 绘制每个粒子的当前圆点，再按从旧到新的顺序绘制轨迹（半径减半，同色）
//  4. 请求下一帧
//
// Stop 是取消钩子：之后待执行的回调不再绘制，也不再请求新帧。
type RenderLoop struct {
	particles *ParticleSystem
	surface   Surface
	scheduler FrameScheduler

	running bool
	frames  uint64
}

// NewRenderLoop 创建渲染循环
// surface 为 nil 时返回 ErrNoSurface，宿主应中止启动
func NewRenderLoop(ps *ParticleSystem, surface Surface, scheduler FrameScheduler) (*RenderLoop, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if ps == nil {
		return nil, ErrNoParticleSystem
	}
	if scheduler == nil {
		return nil, ErrNoScheduler
	}
	return &RenderLoop{
		particles: ps,
		surface:   surface,
		scheduler: scheduler,
	}, nil
}

// Start 请求第一帧，之后每帧自行续约
// 重复调用无效果
func (rl *RenderLoop) Start() {
	if rl.running {
		return
	}
	rl.running = true
	rl.scheduler.RequestFrame(rl.frame)
	log.Printf("[RenderLoop] started")
}

// Stop 停止循环，已请求的回调执行时直接返回
func (rl *RenderLoop) Stop() {
	if !rl.running {
		return
	}
	rl.running = false
	log.Printf("[RenderLoop] stopped after %d frames", rl.frames)
}

// Running 循环是否在运行
func (rl *RenderLoop) Running() bool {
	return rl.running
}

// Frames 已渲染的帧数
func (rl *RenderLoop) Frames() uint64 {
	return rl.frames
}

// frame 单帧回调
func (rl *RenderLoop) frame() {
	if !rl.running {
		return
	}

	width, height := rl.surface.Size()
	rl.surface.Clear(0, 0, width, height)

	rl.particles.Update()
	rl.draw()

	rl.frames++
	rl.scheduler.RequestFrame(rl.frame)
}

// draw 绘制所有粒子及其轨迹
func (rl *RenderLoop) draw() {
	for _, p := range rl.particles.Snapshot() {
		rl.surface.FillCircle(p.X, p.Y, p.Size, p.Color)

		clr := p.Color
		p.Trail.Each(func(point components.TrailPoint) {
			rl.surface.FillCircle(point.X, point.Y, point.Size*TrailSizeFactor, clr)
		})
	}
}

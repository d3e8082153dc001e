package term

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/export"
	"github.com/decker502/sparks/pkg/systems"
)

const (
	// DefaultCellWidth, DefaultCellHeight 每个字符单元对应的世界单位
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0

	// DefaultFPS 终端帧率
	DefaultFPS = 60
)

// Options 终端宿主选项
type Options struct {
	Particles  *config.ParticleConfig // nil 时使用默认配置
	Seed       int64                  // 0 表示使用当前时间
	CellWidth  float64
	CellHeight float64
	FPS        int
	Sound      *Sound // 可为 nil
}

// Runner 终端宿主
//
// 事件和帧都在 Run 的同一个 select 循环中处理，
// 与窗口宿主一样保持单线程语义。
type Runner struct {
	screen    tcell.Screen
	surface   *Surface
	particles *systems.ParticleSystem
	scheduler *systems.DisplayScheduler
	loop      *systems.RenderLoop
	input     *systems.InputSystem
	sound     *Sound
	frameTime time.Duration
	status    string
}

// NewRunner 创建终端宿主
// screen 为 nil 时返回 systems.ErrNoSurface
func NewRunner(screen tcell.Screen, opts Options) (*Runner, error) {
	if screen == nil {
		return nil, fmt.Errorf("terminal screen: %w", systems.ErrNoSurface)
	}

	cfg := opts.Particles
	if cfg == nil {
		cfg = config.DefaultParticleConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	surface := NewSurface(screen, opts.CellWidth, opts.CellHeight, cfg.BackgroundColor())
	ps := systems.NewParticleSystem(cfg, rand.New(rand.NewSource(seed)))
	scheduler := systems.NewDisplayScheduler()

	loop, err := systems.NewRenderLoop(ps, surface, scheduler)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		screen:    screen,
		surface:   surface,
		particles: ps,
		scheduler: scheduler,
		loop:      loop,
		input:     systems.NewInputSystem(ps, cfg.EmitPerMove, nil, nil),
		sound:     opts.Sound,
		frameTime: time.Second / time.Duration(fps),
	}
	log.Printf("[Term] runner created (seed=%d, fps=%d)", seed, fps)
	return r, nil
}

// ParticleSystem 返回粒子系统
func (r *Runner) ParticleSystem() *systems.ParticleSystem {
	return r.particles
}

// Run 运行事件/帧循环，直到退出键、ctx 取消或事件源关闭
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.frameTime)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go pumpEvents(ctx, r.screen.PollEvent, events)

	r.loop.Start()
	defer r.loop.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := r.HandleEvent(ev); quit {
				return nil
			}

		case <-ticker.C:
			r.Frame()
		}
	}
}

// pumpEvents 将 poll 返回的事件转发到 out，直到 poll 返回 nil 或 ctx 取消
// 返回前关闭 out
func pumpEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Frame 触发一次待执行帧并刷新屏幕
func (r *Runner) Frame() {
	r.scheduler.Fire()
	r.drawStatus()
	r.screen.Show()
}

// Start 启动渲染循环（Run 会自动调用；直接驱动 Frame 时需要手动调用）
func (r *Runner) Start() {
	r.loop.Start()
}

// HandleEvent 处理一个 tcell 事件，返回是否请求退出
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)

	case *tcell.EventMouse:
		r.handleMouse(ev)

	case *tcell.EventFocus:
		if !ev.Focused {
			r.input.HandleUp()
			r.input.HandleLeave()
		}

	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

// handleMouse 将鼠标事件转换为 Down/Up/Move
func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := r.surface.ToWorld(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0

	// 终端只报告按键状态，抬起事件发生在移动之前
	switch {
	case pressed && !r.input.IsDown():
		r.input.HandleDown(x, y)
	case !pressed && r.input.IsDown():
		r.input.HandleUp()
	}
	r.input.HandleMove(x, y)
	if pressed {
		r.sound.Tick(time.Now())
	}
}

// handleKey 处理键盘，返回是否请求退出
func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 'r', 'R':
		r.particles.Clear()
	case ' ':
		w, h := r.surface.Size()
		r.particles.Emit(w/2, h/2, r.particles.BurstCount())
	case 'c', 'C':
		if err := export.CopyParametersToClipboard(r.particles.Parameters()); err != nil {
			r.status = err.Error()
			log.Printf("[Term] copy parameters: %v", err)
		} else {
			r.status = "parameters copied"
		}
	case 'g':
		r.nudge(config.ParamGravity, -1)
	case 'G':
		r.nudge(config.ParamGravity, 1)
	case 'w':
		r.nudge(config.ParamWind, -1)
	case 'W':
		r.nudge(config.ParamWind, 1)
	case 'a':
		r.nudge(config.ParamAttractStrength, -1)
	case 'A':
		r.nudge(config.ParamAttractStrength, 1)
	}
	return false
}

// nudge 按界面步长调整参数，并限制在界面范围内
func (r *Runner) nudge(name config.ParameterName, direction float64) {
	rng := config.ParameterRanges[name]
	current, err := r.particles.Parameter(name)
	if err != nil {
		return
	}
	value := rng.Clamp(current + direction*rng.Step)
	// 去掉步进累积的浮点误差
	value = math.Round(value/rng.Step) * rng.Step
	value = math.Round(value*1e9) / 1e9
	if err := r.particles.SetParameter(name, rng.Clamp(value)); err != nil {
		log.Printf("[Term] set %s: %v", name, err)
		return
	}
	r.status = ""
}

// drawStatus 在最后一行绘制状态栏
func (r *Runner) drawStatus() {
	cols, rows := r.screen.Size()
	if rows == 0 {
		return
	}
	p := r.particles.Parameters()
	line := fmt.Sprintf(" %d/%d  gravity=%.2f wind=%.2f attract=%.2f  [g/G w/W a/A] r:clear c:copy q:quit",
		r.particles.Len(), r.particles.Max(), p.Gravity, p.Wind, p.AttractStrength)
	if r.status != "" {
		line += "  " + r.status
	}

	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, ch := range line {
		if col >= cols {
			break
		}
		r.screen.SetContent(col, rows-1, ch, nil, style)
		col++
	}
	for ; col < cols; col++ {
		r.screen.SetContent(col, rows-1, ' ', nil, style)
	}
}

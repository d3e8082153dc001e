// Package app 提供 Ebitengine 宿主的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/ecs"
	"github.com/decker502/sparks/pkg/entities"
	"github.com/decker502/sparks/pkg/export"
	"github.com/decker502/sparks/pkg/systems"
	"github.com/decker502/sparks/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Particles 粒子配置，nil 时使用默认配置
	Particles *config.ParticleConfig
	// Seed 随机数种子，0 表示使用当前时间
	Seed int64
	// HidePanel 不显示参数面板
	HidePanel bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
//
// Update 处理输入（指针、键盘、面板），Draw 在显示刷新时触发渲染循环的帧回调。
// Ebitengine 在同一个 goroutine 中调用两者，因此整个应用是单线程的。
type App struct {
	particles   *systems.ParticleSystem
	renderLoop  *systems.RenderLoop
	scheduler   *systems.DisplayScheduler
	surface     *EbitenSurface
	inputSystem *systems.InputSystem

	entityManager *ecs.EntityManager
	sliderSystem  *systems.SliderSystem
	panelRender   *PanelRenderSystem
	showPanel     bool

	// mobile 触摸屏没有悬停状态，手指抬起即视为指针离开
	mobile bool
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	particleConfig := cfg.Particles
	if particleConfig == nil {
		particleConfig = config.DefaultParticleConfig()
	}
	if err := particleConfig.Validate(); err != nil {
		return nil, fmt.Errorf("粒子配置无效: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ps := systems.NewParticleSystem(particleConfig, rand.New(rand.NewSource(seed)))
	scheduler := systems.NewDisplayScheduler()
	surface := NewEbitenSurface(particleConfig.BackgroundColor())

	renderLoop, err := systems.NewRenderLoop(ps, surface, scheduler)
	if err != nil {
		return nil, fmt.Errorf("渲染循环初始化失败: %w", err)
	}

	em := ecs.NewEntityManager()
	if _, err := entities.NewParameterPanel(em, ps); err != nil {
		return nil, fmt.Errorf("参数面板创建失败: %w", err)
	}

	pointer := ebitenPointerInput{}
	sliderSystem := systems.NewSliderSystem(em, pointer)

	a := &App{
		particles:     ps,
		renderLoop:    renderLoop,
		scheduler:     scheduler,
		surface:       surface,
		entityManager: em,
		sliderSystem:  sliderSystem,
		panelRender:   NewPanelRenderSystem(em),
		showPanel:     !cfg.HidePanel,
		mobile:        utils.IsMobile(),
	}

	a.inputSystem = systems.NewInputSystem(ps, particleConfig.EmitPerMove, pointer, a)
	if a.mobile {
		// 移动端没有键盘，无法切换面板
		a.showPanel = true
	}

	renderLoop.Start()
	log.Printf("[App] initialized (seed=%d)", seed)
	return a, nil
}

// Update 处理输入
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.renderLoop.Stop()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.handleKeys()

	if a.showPanel {
		a.sliderSystem.Update()
	}

	if a.mobile && !utils.IsTouching() {
		a.inputSystem.HandleUp()
		a.inputSystem.HandleLeave()
		return nil
	}
	a.inputSystem.Update()
	return nil
}

// handleKeys 处理快捷键
func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.particles.Clear()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w, h := a.surface.Size()
		a.particles.Emit(w/2, h/2, a.particles.BurstCount())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := export.CopyParametersToClipboard(a.particles.Parameters()); err != nil {
			log.Printf("[App] copy parameters: %v", err)
		}
	}

	if utils.IsAnyKeyJustPressed(ebiten.KeyH, ebiten.KeyTab) {
		a.showPanel = !a.showPanel
		if a.showPanel {
			entities.SyncParameterSliders(a.entityManager, a.particles)
		}
	}
}

// Captures 面板可见时，在面板内按下的指针不生成粒子
func (a *App) Captures(x, y float64) bool {
	return a.showPanel && a.sliderSystem.Captures(x, y)
}

// Draw 绘制画面
// 每次显示刷新调用一次，触发渲染循环的待执行帧
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.scheduler.Fire()

	if a.showPanel {
		a.panelRender.Draw(screen)
	}
}

// Layout 返回逻辑屏幕尺寸
// 画布跟随窗口大小，渲染循环每帧读取最新尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// ParticleSystem 返回粒子系统（用于调试和测试）
func (a *App) ParticleSystem() *systems.ParticleSystem {
	return a.particles
}

// IsTermination 报告 RunGame 返回的错误是否为正常退出
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}

package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
)

// Pointer 最近一次已知的指针位置
// Set 为 false 表示"未设置"，此时 Attract 粒子不受吸引力
type Pointer struct {
	X, Y float64
	Set  bool
}

// ParticleSystem 管理所有存活粒子
//
// 负责：
//   - Emit: 在指定位置生成粒子（超出上限时按 FIFO 淘汰最旧的粒子）
//   - Update: 每帧推进一次所有粒子，然后移除已死亡的粒子
//   - Snapshot: 为渲染提供只读副本
//
// 粒子集合和参数只能通过这些公开方法修改。
// 所有方法都应在同一个逻辑线程（游戏循环）中调用，内部不加锁。
type ParticleSystem struct {
	particles    []*components.ParticleComponent // 按插入顺序排列，也是绘制顺序
	maxParticles int
	params       config.Parameters
	pointer      Pointer

	palette     []color.RGBA
	trailLength int
	decayRate   float64
	minSize     float64
	sizeMin     float64
	sizeMax     float64
	speedRange  float64

	rng    *rand.Rand
	nextID uint64
}

// NewParticleSystem 创建粒子系统
//
// 参数：
//   - cfg: 粒子配置，nil 或未通过 Validate 时使用 DefaultParticleConfig
//   - rng: 随机数源，nil 时以当前时间为种子（测试中传入固定种子）
func NewParticleSystem(cfg *config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	if cfg == nil {
		cfg = config.DefaultParticleConfig()
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[ParticleSystem] %v, falling back to defaults", err)
		cfg = config.DefaultParticleConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ps := &ParticleSystem{
		particles:    make([]*components.ParticleComponent, 0, cfg.MaxParticles),
		maxParticles: cfg.MaxParticles,
		params:       cfg.Parameters,
		palette:      cfg.PaletteColors(),
		trailLength:  cfg.TrailLength,
		decayRate:    cfg.DecayRate,
		minSize:      cfg.MinSize,
		sizeMin:      cfg.SizeMin,
		sizeMax:      cfg.SizeMax,
		speedRange:   cfg.SpeedRange,
		rng:          rng,
		nextID:       1,
	}

	log.Printf("[ParticleSystem] initialized: max=%d, palette=%d colors, params=%+v",
		ps.maxParticles, len(ps.palette), ps.params)
	return ps
}

// Emit 在 (x, y) 处生成 count 个随机粒子
//
// 每追加一个粒子后，如果数量超过上限，淘汰最旧的一个（FIFO）。
// count <= 0 时不做任何事。
func (ps *ParticleSystem) Emit(x, y float64, count int) {
	for i := 0; i < count; i++ {
		ps.particles = append(ps.particles, ps.spawn(x, y))
		if len(ps.particles) > ps.maxParticles {
			ps.particles[0] = nil
			ps.particles = ps.particles[1:]
		}
	}
}

// spawn 创建一个属性随机的粒子
func (ps *ParticleSystem) spawn(x, y float64) *components.ParticleComponent {
	kind := components.BehaviorBounce
	if ps.rng.Intn(2) == 1 {
		kind = components.BehaviorAttract
	}

	p := &components.ParticleComponent{
		ID:     ps.nextID,
		X:      x,
		Y:      y,
		Size:   ps.sizeMin + ps.rng.Float64()*(ps.sizeMax-ps.sizeMin),
		SpeedX: (ps.rng.Float64() - 0.5) * 2 * ps.speedRange,
		SpeedY: (ps.rng.Float64() - 0.5) * 2 * ps.speedRange,
		Color:  ps.palette[ps.rng.Intn(len(ps.palette))],
		Kind:   kind,
		Trail:  components.NewTrail(ps.trailLength),
	}
	ps.nextID++
	return p
}

// SetParameter 修改一个可调参数，从下一次 Update 开始生效
// 接受任意实数；未知的参数名返回 config.ErrUnknownParameter
func (ps *ParticleSystem) SetParameter(name config.ParameterName, value float64) error {
	return ps.params.Set(name, value)
}

// Parameter 读取一个可调参数
func (ps *ParticleSystem) Parameter(name config.ParameterName) (float64, error) {
	return ps.params.Get(name)
}

// Parameters 返回当前参数的副本
func (ps *ParticleSystem) Parameters() config.Parameters {
	return ps.params
}

// SetPointer 记录当前指针位置，供 Attract 粒子使用
func (ps *ParticleSystem) SetPointer(x, y float64) {
	ps.pointer = Pointer{X: x, Y: y, Set: true}
}

// ClearPointer 将指针置为"未设置"
func (ps *ParticleSystem) ClearPointer() {
	ps.pointer = Pointer{}
}

// Pointer 返回当前指针状态
func (ps *ParticleSystem) Pointer() Pointer {
	return ps.pointer
}

// Update 将每个存活粒子推进一步，然后移除尺寸为 0 的粒子
//
// 两个阶段严格分开：先原地更新全部粒子，再压缩集合。
// 遍历过程中不会改变集合长度。
func (ps *ParticleSystem) Update() {
	for _, p := range ps.particles {
		ps.step(p)
	}

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		if !p.IsDead() {
			alive = append(alive, p)
		}
	}
	// 清空尾部引用，便于回收
	for i := len(alive); i < len(ps.particles); i++ {
		ps.particles[i] = nil
	}
	ps.particles = alive
}

// step 单个粒子的一帧更新
func (ps *ParticleSystem) step(p *components.ParticleComponent) {
	switch p.Kind {
	case components.BehaviorBounce:
		p.SpeedY += ps.params.Gravity
		p.SpeedX += ps.params.Wind
	case components.BehaviorAttract:
		if ps.pointer.Set {
			fx, fy := attractForce(ps.pointer.X-p.X, ps.pointer.Y-p.Y, ps.params.AttractStrength)
			p.SpeedX += fx
			p.SpeedY += fy
		}
	}

	p.X += p.SpeedX
	p.Y += p.SpeedY

	p.Size *= ps.decayRate
	if p.Size < ps.minSize {
		p.Size = 0
	}

	p.Trail.Push(components.TrailPoint{X: p.X, Y: p.Y, Size: p.Size})
}

// attractForce 计算朝向位移 (dx, dy) 的单位向量乘以强度
// 距离为 0 或非有限值时返回零力，避免 NaN 污染粒子状态
func attractForce(dx, dy, strength float64) (float64, float64) {
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0, 0
	}
	return dx / distance * strength, dy / distance * strength
}

// Snapshot 返回存活粒子的只读副本（按插入顺序）
// 反映最近一次 Update 之后的状态
func (ps *ParticleSystem) Snapshot() []components.ParticleComponent {
	out := make([]components.ParticleComponent, len(ps.particles))
	for i, p := range ps.particles {
		out[i] = p.Clone()
	}
	return out
}

// Len 当前存活粒子数
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Max 配置的粒子上限
func (ps *ParticleSystem) Max() int {
	return ps.maxParticles
}

// BurstCount 一次集中爆发生成的粒子数（上限的十分之一，至少 1 个）
func (ps *ParticleSystem) BurstCount() int {
	return max(ps.maxParticles/10, 1)
}

// Clear 移除所有存活粒子（参数和指针保持不变）
func (ps *ParticleSystem) Clear() {
	for i := range ps.particles {
		ps.particles[i] = nil
	}
	ps.particles = ps.particles[:0]
	log.Printf("[ParticleSystem] cleared all particles")
}

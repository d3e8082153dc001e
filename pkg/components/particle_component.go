package components

import "image/color"

// BehaviorKind 粒子的运动行为类型
// 在生成时随机决定，之后不可变
type BehaviorKind int

const (
	// BehaviorBounce 受重力和风力驱动的自由运动
	BehaviorBounce BehaviorKind = iota
	// BehaviorAttract 被指针位置吸引的运动
	BehaviorAttract
)

// String 返回行为类型名称（用于日志和调试输出）
func (k BehaviorKind) String() string {
	switch k {
	case BehaviorBounce:
		return "bounce"
	case BehaviorAttract:
		return "attract"
	default:
		return "unknown"
	}
}

// TrailPoint 粒子轨迹上的一个历史快照
type TrailPoint struct {
	X, Y float64
	Size float64
}

// ParticleComponent 表示一个带有渐隐轨迹的可视粒子
//
// 粒子由 ParticleSystem 创建和更新，外部只能通过 Snapshot 读取副本。
// 不变量：Size >= 0；Size 低于 MinSize 时被钳制为 0，表示粒子已死亡。
type ParticleComponent struct {
	// ID 生成序号（单调递增，用于 FIFO 淘汰和日志）
	ID uint64

	// Position (世界坐标)
	X, Y float64

	// Velocity (每帧位移)
	SpeedX float64
	SpeedY float64

	// Size 圆点半径，生成后单调不增
	Size float64

	// Color 调色板中的颜色，生成后不可变
	Color color.RGBA

	// Kind 行为类型，生成后不可变
	Kind BehaviorKind

	// Trail 最近若干帧的位置快照（最旧的先被淘汰）
	Trail Trail
}

// IsDead 粒子尺寸已被钳制为 0
func (p *ParticleComponent) IsDead() bool {
	return p.Size <= 0
}

// Clone 返回粒子的深拷贝（轨迹缓冲区也会复制）
func (p *ParticleComponent) Clone() ParticleComponent {
	c := *p
	c.Trail = p.Trail.clone()
	return c
}

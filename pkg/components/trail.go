package components

import "github.com/decker502/sparks/pkg/config"

// DefaultTrailCapacity 轨迹默认保留的快照数量
const DefaultTrailCapacity = config.MaxTrailLength

// Trail 固定容量的 FIFO 环形缓冲区
//
// 写满后再 Push 会覆盖最旧的快照，长度永远不超过容量。
// 零值可用，容量为 DefaultTrailCapacity。
type Trail struct {
	points []TrailPoint
	head   int // 最旧快照的下标
	count  int
}

// NewTrail 创建指定容量的轨迹
// capacity <= 0 或超过 DefaultTrailCapacity 时使用 DefaultTrailCapacity
func NewTrail(capacity int) Trail {
	if capacity <= 0 || capacity > DefaultTrailCapacity {
		capacity = DefaultTrailCapacity
	}
	return Trail{points: make([]TrailPoint, capacity)}
}

// Push 追加一个快照，超出容量时淘汰最旧的快照
func (t *Trail) Push(p TrailPoint) {
	if t.points == nil {
		t.points = make([]TrailPoint, DefaultTrailCapacity)
	}
	capacity := len(t.points)
	if t.count < capacity {
		t.points[(t.head+t.count)%capacity] = p
		t.count++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % capacity
}

// Len 当前快照数量
func (t *Trail) Len() int {
	return t.count
}

// Cap 轨迹容量
func (t *Trail) Cap() int {
	if t.points == nil {
		return DefaultTrailCapacity
	}
	return len(t.points)
}

// At 返回第 i 个快照，0 为最旧
func (t *Trail) At(i int) TrailPoint {
	return t.points[(t.head+i)%len(t.points)]
}

// Points 按从旧到新的顺序返回所有快照（新分配的切片）
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.At(i)
	}
	return out
}

// Each 按从旧到新的顺序遍历快照，不分配内存
func (t *Trail) Each(fn func(p TrailPoint)) {
	for i := 0; i < t.count; i++ {
		fn(t.At(i))
	}
}

func (t Trail) clone() Trail {
	if t.points == nil {
		return t
	}
	pts := make([]TrailPoint, len(t.points))
	copy(pts, t.points)
	t.points = pts
	return t
}

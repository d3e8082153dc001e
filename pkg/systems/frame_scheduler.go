package systems

import "log"

// DisplayScheduler 最多持有一个待执行帧回调的调度器
//
// 宿主在显示刷新时（Ebitengine 的 Draw，或终端的定时器）调用 Fire。
// 回调在 Fire 的调用方 goroutine 中执行，不引入额外并发。
type DisplayScheduler struct {
	pending func()
}

// NewDisplayScheduler 创建调度器
func NewDisplayScheduler() *DisplayScheduler {
	return &DisplayScheduler{}
}

// RequestFrame 请求在下一次显示刷新时调用 fn
// 已有待执行回调时替换之（同一时间只允许一个）
func (s *DisplayScheduler) RequestFrame(fn func()) {
	if s.pending != nil {
		log.Printf("[DisplayScheduler] replacing outstanding frame callback")
	}
	s.pending = fn
}

// Fire 执行并清除待执行的回调
// 返回是否执行了回调
func (s *DisplayScheduler) Fire() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}

// Pending 是否有待执行的回调
func (s *DisplayScheduler) Pending() bool {
	return s.pending != nil
}

package systems

import "testing"

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	pressed bool
	x, y    int
}

func (m *mockPointerInput) PointerState() (bool, int, int) {
	return m.pressed, m.x, m.y
}

// rectCapture 截获一个矩形区域
type rectCapture struct {
	x, y, w, h float64
}

func (r rectCapture) Captures(x, y float64) bool {
	return isPointInRect(x, y, r.x, r.y, r.w, r.h)
}

func TestInputSystemHandleEvents(t *testing.T) {
	ps := newTestParticleSystem(t, nil)
	s := NewInputSystem(ps, 5, nil, nil)

	s.HandleMove(10, 10)
	if ps.Len() != 0 {
		t.Fatalf("move without press emitted %d particles", ps.Len())
	}
	if p := ps.Pointer(); !p.Set || p.X != 10 || p.Y != 10 {
		t.Errorf("pointer = %+v, want (10, 10) set", p)
	}

	s.HandleDown(20, 20)
	if ps.Len() != 0 {
		t.Errorf("press alone emitted particles")
	}
	s.HandleMove(30, 30)
	s.HandleMove(40, 40)
	if ps.Len() != 10 {
		t.Errorf("Len after two moves = %d, want 10", ps.Len())
	}

	s.HandleUp()
	s.HandleMove(50, 50)
	if ps.Len() != 10 {
		t.Errorf("move after release emitted particles")
	}

	s.HandleLeave()
	if ps.Pointer().Set {
		t.Errorf("pointer still set after leave")
	}
}

func TestInputSystemCapture(t *testing.T) {
	ps := newTestParticleSystem(t, nil)
	s := NewInputSystem(ps, 5, nil, rectCapture{0, 0, 100, 100})

	s.HandleDown(50, 50)
	s.HandleMove(60, 60)
	s.HandleMove(200, 200)
	if ps.Len() != 0 {
		t.Errorf("drag starting in captured area emitted %d particles", ps.Len())
	}

	s.HandleUp()
	s.HandleDown(200, 200)
	s.HandleMove(50, 50)
	if ps.Len() != 5 {
		t.Errorf("drag starting outside captured area: Len = %d, want 5", ps.Len())
	}
}

func TestInputSystemUpdatePolling(t *testing.T) {
	ps := newTestParticleSystem(t, nil)
	input := &mockPointerInput{x: 10, y: 10}
	s := NewInputSystem(ps, 5, input, nil)

	// 首次轮询只记录位置
	s.Update()
	if !ps.Pointer().Set || ps.Len() != 0 {
		t.Fatalf("first poll: pointer=%+v len=%d", ps.Pointer(), ps.Len())
	}

	// 按下并移动：同一帧内先按下再移动
	input.pressed = true
	input.x = 20
	s.Update()
	if !s.IsDown() || ps.Len() != 5 {
		t.Fatalf("press+move: down=%v len=%d, want true/5", s.IsDown(), ps.Len())
	}

	// 位置不变不会重复生成
	s.Update()
	if ps.Len() != 5 {
		t.Errorf("stationary pointer emitted: len=%d", ps.Len())
	}

	// 同一帧移动并抬起：先移动（仍按下）再抬起
	input.pressed = false
	input.x = 30
	s.Update()
	if s.IsDown() {
		t.Errorf("still down after release")
	}
	if ps.Len() != 10 {
		t.Errorf("move in release frame: len=%d, want 10", ps.Len())
	}
}

func TestInputSystemLeaveResetsPolling(t *testing.T) {
	ps := newTestParticleSystem(t, nil)
	input := &mockPointerInput{x: 10, y: 10}
	s := NewInputSystem(ps, 5, input, nil)

	s.Update()
	s.HandleLeave()
	s.Update()
	if !ps.Pointer().Set {
		t.Errorf("pointer not restored on next poll after leave")
	}
}

package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/systems"
)

func newTestRunner(t *testing.T) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t, 80, 25)
	r, err := NewRunner(screen, Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	return r, screen
}

func TestNewRunnerNilScreen(t *testing.T) {
	_, err := NewRunner(nil, Options{})
	if !errors.Is(err, systems.ErrNoSurface) {
		t.Fatalf("err = %v, want ErrNoSurface", err)
	}
}

func TestNewRunnerInvalidConfig(t *testing.T) {
	screen := newTestScreen(t, 80, 25)
	cfg := config.DefaultParticleConfig()
	cfg.MaxParticles = 0
	_, err := NewRunner(screen, Options{Particles: cfg})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestRunnerMouseDragEmits(t *testing.T) {
	r, _ := newTestRunner(t)

	// 未按下时移动只更新指针
	r.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if got := r.ParticleSystem().Len(); got != 0 {
		t.Fatalf("Len after hover = %d, want 0", got)
	}
	if !r.ParticleSystem().Pointer().Set {
		t.Errorf("pointer not set after hover")
	}

	r.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	want := 2 * config.DefaultParticleConfig().EmitPerMove
	if got := r.ParticleSystem().Len(); got != want {
		t.Fatalf("Len after drag = %d, want %d", got, want)
	}

	r.HandleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	r.HandleEvent(tcell.NewEventMouse(13, 5, tcell.ButtonNone, tcell.ModNone))
	if got := r.ParticleSystem().Len(); got != want {
		t.Errorf("Len after release = %d, want %d", got, want)
	}
}

func TestRunnerFocusLostClearsPointer(t *testing.T) {
	r, _ := newTestRunner(t)

	r.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	r.HandleEvent(tcell.NewEventFocus(false))

	if r.ParticleSystem().Pointer().Set {
		t.Errorf("pointer still set after focus lost")
	}
	if r.input.IsDown() {
		t.Errorf("still down after focus lost")
	}
}

func TestRunnerKeys(t *testing.T) {
	r, _ := newTestRunner(t)

	r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if r.ParticleSystem().Len() == 0 {
		t.Fatalf("space did not emit a burst")
	}

	r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if got := r.ParticleSystem().Len(); got != 0 {
		t.Errorf("Len after r = %d, want 0", got)
	}

	if quit := r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !quit {
		t.Errorf("q did not request quit")
	}
	if quit := r.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Errorf("Escape did not request quit")
	}
}

func TestRunnerParameterKeys(t *testing.T) {
	r, _ := newTestRunner(t)

	r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone))
	if got := r.ParticleSystem().Parameters().Gravity; got != 0.11 {
		t.Errorf("gravity after G = %v, want 0.11", got)
	}

	// 风力上限 0.1，多次增大后保持在范围内
	for i := 0; i < 20; i++ {
		r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone))
	}
	if got := r.ParticleSystem().Parameters().Wind; got != 0.1 {
		t.Errorf("wind after many W = %v, want 0.1", got)
	}

	for i := 0; i < 10; i++ {
		r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	}
	if got := r.ParticleSystem().Parameters().AttractStrength; got != 0 {
		t.Errorf("attract after many a = %v, want 0", got)
	}
}

func TestRunnerFrameDrawsParticlesAndStatus(t *testing.T) {
	r, screen := newTestRunner(t)
	r.Start()

	r.ParticleSystem().Emit(100, 100, 1)
	r.Frame()

	if got := r.loop.Frames(); got != 1 {
		t.Fatalf("Frames = %d, want 1", got)
	}

	_, rows := screen.Size()
	ch, _, _, _ := screen.GetContent(1, rows-1)
	if ch != '1' {
		t.Errorf("status line starts with %q, want particle count", ch)
	}
}

func TestRunnerRunStopsOnContextCancel(t *testing.T) {
	r, _ := newTestRunner(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run err = %v, want DeadlineExceeded", err)
	}
	if r.loop.Running() {
		t.Errorf("render loop still running after Run returned")
	}
	if r.loop.Frames() == 0 {
		t.Errorf("no frames rendered")
	}
}

func TestRunnerRunQuitKey(t *testing.T) {
	r, screen := newTestRunner(t)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run err = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

// TestPumpEventsStopsOnCancel 接收方不再读取时，取消 ctx 后转发协程退出
func TestPumpEventsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	}

	out := make(chan tcell.Event, 1)
	done := make(chan struct{})
	go func() {
		pumpEvents(ctx, poll, out)
		close(done)
	}()

	// 缓冲区写满后转发协程阻塞在发送上
	<-out
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pumpEvents still blocked after cancel")
	}
}

func TestPumpEventsClosesOnNil(t *testing.T) {
	out := make(chan tcell.Event, 1)
	pumpEvents(context.Background(), func() tcell.Event { return nil }, out)

	if _, ok := <-out; ok {
		t.Error("out not closed after poll returned nil")
	}
}

func TestRunnerBurstMatchesWindowHost(t *testing.T) {
	r, _ := newTestRunner(t)
	r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	if got, want := r.ParticleSystem().Len(), r.ParticleSystem().BurstCount(); got != want {
		t.Errorf("burst emitted %d, want %d", got, want)
	}
}

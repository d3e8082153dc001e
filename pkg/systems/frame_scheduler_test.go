package systems

import "testing"

func TestDisplaySchedulerFire(t *testing.T) {
	s := NewDisplayScheduler()
	if s.Fire() {
		t.Fatal("Fire with nothing pending returned true")
	}

	calls := 0
	s.RequestFrame(func() { calls++ })
	if !s.Pending() {
		t.Fatal("Pending = false after RequestFrame")
	}
	if !s.Fire() || calls != 1 {
		t.Fatalf("Fire did not run the callback (calls = %d)", calls)
	}
	if s.Pending() || s.Fire() {
		t.Errorf("callback ran more than once")
	}
}

func TestDisplaySchedulerReplacesPending(t *testing.T) {
	s := NewDisplayScheduler()
	var got []string
	s.RequestFrame(func() { got = append(got, "first") })
	s.RequestFrame(func() { got = append(got, "second") })
	s.Fire()

	if len(got) != 1 || got[0] != "second" {
		t.Errorf("ran %v, want [second]", got)
	}
}

func TestDisplaySchedulerRequestFromCallback(t *testing.T) {
	s := NewDisplayScheduler()
	var frame func()
	count := 0
	frame = func() {
		count++
		s.RequestFrame(frame)
	}
	s.RequestFrame(frame)

	s.Fire()
	s.Fire()
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if !s.Pending() {
		t.Errorf("re-requested frame not pending")
	}
}

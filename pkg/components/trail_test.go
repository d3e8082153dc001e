package components

import "testing"

func TestTrailEvictsOldest(t *testing.T) {
	trail := NewTrail(3)
	for i := 1; i <= 5; i++ {
		trail.Push(TrailPoint{X: float64(i)})
	}

	if trail.Len() != 3 || trail.Cap() != 3 {
		t.Fatalf("Len/Cap = %d/%d, want 3/3", trail.Len(), trail.Cap())
	}
	for i, want := range []float64{3, 4, 5} {
		if got := trail.At(i).X; got != want {
			t.Errorf("At(%d).X = %v, want %v", i, got, want)
		}
	}
}

func TestTrailCapacityCapped(t *testing.T) {
	trail := NewTrail(25)
	if trail.Cap() != DefaultTrailCapacity {
		t.Fatalf("Cap = %d, want %d", trail.Cap(), DefaultTrailCapacity)
	}
	for i := 0; i < 20; i++ {
		trail.Push(TrailPoint{X: float64(i)})
	}
	if trail.Len() != DefaultTrailCapacity {
		t.Errorf("Len = %d, want %d", trail.Len(), DefaultTrailCapacity)
	}
}

func TestTrailZeroValue(t *testing.T) {
	var trail Trail
	if trail.Len() != 0 || trail.Cap() != DefaultTrailCapacity {
		t.Fatalf("zero trail Len/Cap = %d/%d", trail.Len(), trail.Cap())
	}

	for i := 0; i < 12; i++ {
		trail.Push(TrailPoint{X: float64(i)})
	}
	if trail.Len() != DefaultTrailCapacity {
		t.Errorf("Len = %d, want %d", trail.Len(), DefaultTrailCapacity)
	}
	if trail.At(0).X != 2 {
		t.Errorf("oldest = %v, want 2", trail.At(0).X)
	}
}

func TestTrailEachOrder(t *testing.T) {
	trail := NewTrail(4)
	for i := 0; i < 6; i++ {
		trail.Push(TrailPoint{Size: float64(i)})
	}

	var got []float64
	trail.Each(func(p TrailPoint) { got = append(got, p.Size) })

	want := []float64{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	points := trail.Points()
	if len(points) != 4 || points[0].Size != 2 || points[3].Size != 5 {
		t.Errorf("Points = %+v", points)
	}
}

func TestParticleCloneCopiesTrail(t *testing.T) {
	p := &ParticleComponent{ID: 7, Size: 3, Trail: NewTrail(2)}
	p.Trail.Push(TrailPoint{X: 1})

	c := p.Clone()
	c.Trail.Push(TrailPoint{X: 2})
	c.Trail.Push(TrailPoint{X: 3})

	if p.Trail.Len() != 1 || p.Trail.At(0).X != 1 {
		t.Errorf("clone shares trail with original: %+v", p.Trail.Points())
	}
}

func TestParticleIsDead(t *testing.T) {
	if !(&ParticleComponent{Size: 0}).IsDead() {
		t.Error("size 0 not dead")
	}
	if (&ParticleComponent{Size: 0.2}).IsDead() {
		t.Error("size 0.2 dead")
	}
}

func TestBehaviorKindString(t *testing.T) {
	if BehaviorBounce.String() == BehaviorAttract.String() {
		t.Errorf("kinds share name %q", BehaviorBounce.String())
	}
}

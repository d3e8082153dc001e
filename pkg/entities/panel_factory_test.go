package entities

import (
	"errors"
	"testing"

	"github.com/decker502/sparks/pkg/components"
	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/ecs"
)

// fakeSink 基于 config.Parameters 的参数读写对象
type fakeSink struct {
	params config.Parameters
}

func (f *fakeSink) Parameter(name config.ParameterName) (float64, error) {
	return f.params.Get(name)
}

func (f *fakeSink) SetParameter(name config.ParameterName, value float64) error {
	return f.params.Set(name, value)
}

func TestNewParameterPanel(t *testing.T) {
	em := ecs.NewEntityManager()
	sink := &fakeSink{params: config.DefaultParameters()}

	ids, err := NewParameterPanel(em, sink)
	if err != nil {
		t.Fatalf("NewParameterPanel failed: %v", err)
	}
	if len(ids) != len(config.ParameterNames) {
		t.Fatalf("created %d sliders, want %d", len(ids), len(config.ParameterNames))
	}

	for row, id := range ids {
		name := config.ParameterNames[row]
		slider, ok := ecs.GetComponent[*components.SliderComponent](em, id)
		if !ok {
			t.Fatalf("slider %d missing SliderComponent", row)
		}
		binding, _ := ecs.GetComponent[*components.ParameterBindingComponent](em, id)
		if binding == nil || binding.Name != name {
			t.Errorf("slider %d bound to %v, want %s", row, binding, name)
		}

		r := config.ParameterRanges[name]
		want, _ := sink.Parameter(name)
		if slider.Min != r.Min || slider.Max != r.Max || slider.Step != r.Step || slider.Label != r.Label {
			t.Errorf("slider %d range = %+v, want %+v", row, slider, r)
		}
		if slider.Value != want {
			t.Errorf("slider %d value = %v, want %v", row, slider.Value, want)
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		x, y := config.SliderSlotPosition(row)
		if pos == nil || pos.X != x || pos.Y != y {
			t.Errorf("slider %d position = %+v, want (%v, %v)", row, pos, x, y)
		}
	}
}

func TestParameterSliderWritesSink(t *testing.T) {
	em := ecs.NewEntityManager()
	sink := &fakeSink{params: config.DefaultParameters()}

	id, err := NewParameterSlider(em, sink, config.ParamAttractStrength, 0)
	if err != nil {
		t.Fatalf("NewParameterSlider failed: %v", err)
	}
	slider, _ := ecs.GetComponent[*components.SliderComponent](em, id)
	slider.OnValueChange(0.42)

	if sink.params.AttractStrength != 0.42 {
		t.Errorf("attract strength = %v, want 0.42", sink.params.AttractStrength)
	}
}

func TestParameterSliderUnknownName(t *testing.T) {
	em := ecs.NewEntityManager()
	_, err := NewParameterSlider(em, &fakeSink{}, "turbulence", 0)
	if !errors.Is(err, config.ErrUnknownParameter) {
		t.Errorf("err = %v, want ErrUnknownParameter", err)
	}
	if em.EntityCount() != 0 {
		t.Errorf("entity created for unknown parameter")
	}
}

func TestSyncParameterSliders(t *testing.T) {
	em := ecs.NewEntityManager()
	sink := &fakeSink{params: config.DefaultParameters()}
	ids, _ := NewParameterPanel(em, sink)

	sink.params.Gravity = 0.75
	sink.params.Wind = 5 // 超出界面范围

	dragging, _ := ecs.GetComponent[*components.SliderComponent](em, ids[2])
	dragging.IsDragging = true
	sink.params.AttractStrength = 0.9

	SyncParameterSliders(em, sink)

	gravity, _ := ecs.GetComponent[*components.SliderComponent](em, ids[0])
	wind, _ := ecs.GetComponent[*components.SliderComponent](em, ids[1])
	if gravity.Value != 0.75 {
		t.Errorf("gravity slider = %v, want 0.75", gravity.Value)
	}
	if wind.Value != config.ParameterRanges[config.ParamWind].Max {
		t.Errorf("wind slider = %v, want clamped to max", wind.Value)
	}
	if dragging.Value != 0.05 {
		t.Errorf("dragging slider changed to %v", dragging.Value)
	}
}

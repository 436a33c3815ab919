package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
)

// SpinSystem turns spinning entities a little each running frame.
type SpinSystem struct{}

func NewSpinSystem() *SpinSystem {
	return &SpinSystem{}
}

func (s *SpinSystem) Update(w *ecs.World) {
	if state, ok := entity.State(w); !ok || !state.Running() {
		return
	}

	ecs.ForEach2(w, component.SpinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, spin *component.Spin, t *component.Transform) {
		t.RotX += spin.X
		t.RotY += spin.Y
		t.RotZ += spin.Z
	})
}

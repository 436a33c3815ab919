package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/prefabs"
)

// KinematicsSystem integrates the avatar's jump arc and lands it on the
// ground.
type KinematicsSystem struct {
	groundY float64
	gravity float64
}

func NewKinematicsSystem(t prefabs.Tuning) *KinematicsSystem {
	return &KinematicsSystem{groundY: t.Avatar.GroundY, gravity: t.Avatar.Gravity}
}

func (s *KinematicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if state, ok := entity.State(w); !ok || !state.Running() {
		return
	}

	ecs.ForEach2(w, component.JumpComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, j *component.Jump, t *component.Transform) {
		if !j.Airborne && t.Y <= s.groundY {
			return
		}

		j.Velocity += s.gravity
		t.Y += j.Velocity

		if t.Y <= s.groundY {
			t.Y = s.groundY
			j.Airborne = false
			j.Velocity = 0
		}
	})
}

// ApplyJump launches the avatar when it rests on the ground. It reports
// whether a jump started; mid-air calls change nothing.
func ApplyJump(w *ecs.World, t prefabs.Tuning) bool {
	e, ok := ecs.First(w, component.AvatarTagComponent.Kind())
	if !ok {
		return false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	j, ok := ecs.Get(w, e, component.JumpComponent.Kind())
	if !ok {
		return false
	}
	if j.Airborne || tr.Y > t.Avatar.GroundY {
		return false
	}

	j.Airborne = true
	j.Velocity = t.Avatar.LaunchVelocity
	return true
}

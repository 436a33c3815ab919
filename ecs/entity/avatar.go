package entity

import (
	"fmt"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

// NewAvatar creates the player cube resting on the ground at the lane
// origin.
func NewAvatar(w *ecs.World, t prefabs.Tuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.AvatarTagComponent.Kind(), &component.AvatarTag{}); err != nil {
		return 0, fmt.Errorf("avatar: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Y: t.Avatar.GroundY}); err != nil {
		return 0, fmt.Errorf("avatar: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.JumpComponent.Kind(), &component.Jump{}); err != nil {
		return 0, fmt.Errorf("avatar: add jump: %w", err)
	}
	if err := ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{Y: t.Avatar.Spin}); err != nil {
		return 0, fmt.Errorf("avatar: add spin: %w", err)
	}

	size := t.Avatar.Size
	model := &component.Model{
		Shape:      component.ShapeBox,
		Width:      size,
		Height:     size,
		Depth:      size,
		Color:      t.Avatar.Color.NRGBA,
		CastShadow: true,
	}
	if err := ecs.Add(w, e, component.ModelComponent.Kind(), model); err != nil {
		return 0, fmt.Errorf("avatar: add model: %w", err)
	}

	return e, nil
}

// ResetAvatar puts the avatar back on the ground with no vertical motion.
func ResetAvatar(w *ecs.World, e ecs.Entity, t prefabs.Tuning) {
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tr.Y = t.Avatar.GroundY
		tr.RotY = 0
	}
	if j, ok := ecs.Get(w, e, component.JumpComponent.Kind()); ok {
		j.Velocity = 0
		j.Airborne = false
	}
	if s, ok := ecs.Get(w, e, component.SpinComponent.Kind()); ok {
		s.Y = t.Avatar.Spin
	}
	if m, ok := ecs.Get(w, e, component.ModelComponent.Kind()); ok {
		m.Width, m.Height, m.Depth = t.Avatar.Size, t.Avatar.Size, t.Avatar.Size
		m.Color = t.Avatar.Color.NRGBA
	}
}

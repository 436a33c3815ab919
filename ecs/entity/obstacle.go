package entity

import (
	"fmt"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

// NewObstacle creates a block at lateral offset x on the far spawn line.
func NewObstacle(w *ecs.World, t prefabs.Tuning, x float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{}); err != nil {
		return 0, fmt.Errorf("obstacle: add tag: %w", err)
	}
	tr := &component.Transform{X: x, Y: t.Obstacle.Y, Z: t.Lane.SpawnZ}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return 0, fmt.Errorf("obstacle: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{Y: t.Obstacle.Spin}); err != nil {
		return 0, fmt.Errorf("obstacle: add spin: %w", err)
	}
	model := &component.Model{
		Shape:      component.ShapeBox,
		Width:      t.Obstacle.Width,
		Height:     t.Obstacle.Height,
		Depth:      t.Obstacle.Depth,
		Color:      t.Obstacle.Color.NRGBA,
		CastShadow: true,
	}
	if err := ecs.Add(w, e, component.ModelComponent.Kind(), model); err != nil {
		return 0, fmt.Errorf("obstacle: add model: %w", err)
	}

	return e, nil
}

package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

// NewCoin creates a coin at (x, y) on the far spawn line, stood on its edge
// so it faces the camera.
func NewCoin(w *ecs.World, t prefabs.Tuning, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{}); err != nil {
		return 0, fmt.Errorf("coin: add tag: %w", err)
	}
	tr := &component.Transform{X: x, Y: y, Z: t.Lane.SpawnZ, RotX: math.Pi / 2}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return 0, fmt.Errorf("coin: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{Z: t.Coin.Spin}); err != nil {
		return 0, fmt.Errorf("coin: add spin: %w", err)
	}
	model := &component.Model{
		Shape:      component.ShapeDisc,
		Width:      t.Coin.Radius * 2,
		Height:     t.Coin.Radius * 2,
		Depth:      0.1,
		Color:      t.Coin.Color.NRGBA,
		CastShadow: true,
	}
	if err := ecs.Add(w, e, component.ModelComponent.Kind(), model); err != nil {
		return 0, fmt.Errorf("coin: add model: %w", err)
	}

	return e, nil
}

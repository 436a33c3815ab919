package entity

import (
	"fmt"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

// NewGameState creates the singleton run record in the Idle phase.
func NewGameState(w *ecs.World, t prefabs.Tuning) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	state := &component.GameState{Phase: component.PhaseIdle, Speed: t.Speed.Initial}
	if err := ecs.Add(w, e, component.GameStateComponent.Kind(), state); err != nil {
		return 0, fmt.Errorf("game state: add: %w", err)
	}
	return e, nil
}

// State returns the singleton run record, if the world has one.
func State(w *ecs.World) (*component.GameState, bool) {
	e, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.GameStateComponent.Kind())
}

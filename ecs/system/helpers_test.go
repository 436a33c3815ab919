package system

import (
	"math"
	"testing"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/prefabs"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// runningWorld returns a world with a running game state and an avatar on
// the ground.
func runningWorld(t *testing.T) (*ecs.World, *component.GameState, ecs.Entity) {
	t.Helper()
	tuning := prefabs.DefaultTuning()
	w := ecs.NewWorld()

	if _, err := entity.NewGameState(w, tuning); err != nil {
		t.Fatalf("game state: %v", err)
	}
	avatar, err := entity.NewAvatar(w, tuning)
	if err != nil {
		t.Fatalf("avatar: %v", err)
	}
	state, ok := entity.State(w)
	if !ok {
		t.Fatal("expected a game state")
	}
	state.Phase = component.PhaseRunning
	return w, state, avatar
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func placeObstacle(t *testing.T, w *ecs.World, x, z float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewObstacle(w, prefabs.DefaultTuning(), x)
	if err != nil {
		t.Fatalf("obstacle: %v", err)
	}
	transformOf(t, w, e).Z = z
	return e
}

func placeCoin(t *testing.T, w *ecs.World, x, y, z float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewCoin(w, prefabs.DefaultTuning(), x, y)
	if err != nil {
		t.Fatalf("coin: %v", err)
	}
	transformOf(t, w, e).Z = z
	return e
}

func eventsOf(w *ecs.World, kind ecs.EventKind) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Pending() {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}

package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/prefabs"
)

// CoinSystem scrolls coins toward the avatar, collects the ones it touches
// and drops the ones that pass the exit line.
type CoinSystem struct {
	tuning prefabs.Tuning
}

func NewCoinSystem(t prefabs.Tuning) *CoinSystem {
	return &CoinSystem{tuning: t}
}

func (s *CoinSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, ok := entity.State(w)
	if !ok || !state.Running() {
		return
	}
	avatar, ok := avatarTransform(w)
	if !ok {
		return
	}

	ecs.ForEachReverse(w, component.CoinComponent.Kind(), func(e ecs.Entity, _ *component.Coin) bool {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return true
		}

		t.Z += state.Speed

		if Distance(avatar, t) < s.tuning.Collision.Distance {
			z := t.Z
			ecs.DestroyEntity(w, e)
			state.Score += s.tuning.Coin.Bonus
			state.CoinsCollected++
			w.Events().Push(ecs.Event{Kind: ecs.EventCoinCollected, Entity: e, Score: state.Score, Speed: state.Speed, Z: z})
			return true
		}

		if t.Z > s.tuning.Lane.ExitZ {
			ecs.DestroyEntity(w, e)
		}
		return true
	})
}

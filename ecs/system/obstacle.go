package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/prefabs"
)

// ObstacleSystem scrolls obstacles toward the avatar. Touching one ends the
// run; one that scrolls past the exit line is removed and scores.
type ObstacleSystem struct {
	tuning prefabs.Tuning
}

func NewObstacleSystem(t prefabs.Tuning) *ObstacleSystem {
	return &ObstacleSystem{tuning: t}
}

func (s *ObstacleSystem) Update(w *ecs.World) {
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

	ecs.ForEachReverse(w, component.ObstacleComponent.Kind(), func(e ecs.Entity, _ *component.Obstacle) bool {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return true
		}

		t.Z += state.Speed

		if Distance(avatar, t) < s.tuning.Collision.Distance {
			endRun(w, state, e, t.Z)
			return false
		}

		if t.Z > s.tuning.Lane.ExitZ {
			z := t.Z
			ecs.DestroyEntity(w, e)
			state.Score += s.tuning.Obstacle.PassBonus
			state.ObstaclesPassed++
			w.Events().Push(ecs.Event{Kind: ecs.EventObstaclePassed, Entity: e, Score: state.Score, Speed: state.Speed, Z: z})
			rampSpeed(w, state, s.tuning.Speed)
		}
		return true
	})
}

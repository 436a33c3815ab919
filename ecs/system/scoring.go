package system

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/prefabs"
)

// rampSpeed raises speed once for every score multiple of the milestone
// crossed since the last ramp. Score never falls, so neither does speed.
func rampSpeed(w *ecs.World, state *component.GameState, t prefabs.SpeedSpec) {
	reached := state.Score / t.Milestone
	if reached <= state.Milestones {
		return
	}
	state.Speed += t.Step * float64(reached-state.Milestones)
	state.Milestones = reached
	w.Events().Push(ecs.Event{Kind: ecs.EventMilestone, Score: state.Score, Speed: state.Speed})
}

func endRun(w *ecs.World, state *component.GameState, hit ecs.Entity, z float64) {
	state.Phase = component.PhaseGameOver
	state.FinalScore = state.Score
	w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: hit, Score: state.Score, Speed: state.Speed, Z: z})
}

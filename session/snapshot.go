package session

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
)

type Position struct {
	X, Y, Z float64
}

type AvatarView struct {
	Position
	Velocity float64
	Airborne bool
}

// Snapshot is a read-only copy of everything a host needs to draw a frame
// or a test needs to assert on one.
type Snapshot struct {
	Phase      component.Phase
	Score      int
	FinalScore int
	Speed      float64
	Frame      int

	ObstacleTimer int
	CoinTimer     int

	Avatar    AvatarView
	Obstacles []Position
	Coins     []Position
	Banner    string
}

func (s *Session) Snapshot() Snapshot {
	state := s.gameState()
	snap := Snapshot{
		Phase:         state.Phase,
		Score:         state.Score,
		FinalScore:    state.FinalScore,
		Speed:         state.Speed,
		Frame:         state.Frame,
		ObstacleTimer: state.ObstacleTimer,
		CoinTimer:     state.CoinTimer,
	}

	if t, ok := ecs.Get(s.world, s.avatar, component.TransformComponent.Kind()); ok {
		snap.Avatar.Position = Position{X: t.X, Y: t.Y, Z: t.Z}
	}
	if j, ok := ecs.Get(s.world, s.avatar, component.JumpComponent.Kind()); ok {
		snap.Avatar.Velocity = j.Velocity
		snap.Avatar.Airborne = j.Airborne
	}

	snap.Obstacles = positions(s.world, component.ObstacleComponent.Kind())
	snap.Coins = positions(s.world, component.CoinComponent.Kind())

	if e, ok := ecs.First(s.world, component.BannerComponent.Kind()); ok {
		if b, ok := ecs.Get(s.world, e, component.BannerComponent.Kind()); ok {
			snap.Banner = b.Text
		}
	}
	return snap
}

func positions[T any](w *ecs.World, kind component.ComponentKind[T]) []Position {
	var out []Position
	ecs.ForEach2(w, kind, component.TransformComponent.Kind(), func(_ ecs.Entity, _ *T, t *component.Transform) {
		out = append(out, Position{X: t.X, Y: t.Y, Z: t.Z})
	})
	return out
}

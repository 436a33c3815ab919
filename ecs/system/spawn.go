package system

import (
	"log"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/prefabs"
)

// SpawnSystem counts frames and drops obstacles and coins on the far spawn
// line. Both intervals shrink as speed grows.
type SpawnSystem struct {
	tuning prefabs.Tuning
	rng    Rand
}

func NewSpawnSystem(t prefabs.Tuning, rng Rand) *SpawnSystem {
	return &SpawnSystem{tuning: t, rng: rng}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	state, ok := entity.State(w)
	if !ok || !state.Running() {
		return
	}

	state.ObstacleTimer++
	if float64(state.ObstacleTimer) >= s.tuning.Obstacle.Interval/state.Speed {
		state.ObstacleTimer = 0
		x := s.lateral()
		if e, err := entity.NewObstacle(w, s.tuning, x); err != nil {
			log.Printf("spawn: obstacle: %v", err)
		} else {
			w.Events().Push(ecs.Event{Kind: ecs.EventSpawned, Entity: e, Score: state.Score, Speed: state.Speed, Z: s.tuning.Lane.SpawnZ})
		}
	}

	state.CoinTimer++
	if float64(state.CoinTimer) >= s.tuning.Coin.Interval/state.Speed {
		state.CoinTimer = 0
		x := s.lateral()
		y := s.tuning.Coin.MinY + s.rng.Float64()*(s.tuning.Coin.MaxY-s.tuning.Coin.MinY)
		if e, err := entity.NewCoin(w, s.tuning, x, y); err != nil {
			log.Printf("spawn: coin: %v", err)
		} else {
			w.Events().Push(ecs.Event{Kind: ecs.EventSpawned, Entity: e, Score: state.Score, Speed: state.Speed, Z: s.tuning.Lane.SpawnZ})
		}
	}
}

func (s *SpawnSystem) lateral() float64 {
	hw := s.tuning.Lane.HalfWidth
	return -hw + s.rng.Float64()*2*hw
}

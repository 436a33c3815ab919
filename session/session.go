// Package session drives one endless-runner game: it owns the ECS world,
// the system order and the run lifecycle, and advances play one frame per
// Tick. Hosts call Tick from their frame callback and render the world
// afterwards.
package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/ecs/system"
	"github.com/milk9111/lanerunner/prefabs"
)

type Session struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	tuning    prefabs.Tuning
	pending   *prefabs.Tuning
	src       prefabs.Source
	rng       system.Rand
	announce  bool
	listener  func(ecs.Event)

	avatar ecs.Entity
	state  ecs.Entity
}

type Option func(*Session)

// WithRand sets the spawn placement source.
func WithRand(r system.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a math/rand source for spawn placement.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

func WithTuning(t prefabs.Tuning) Option {
	return func(s *Session) { s.tuning = t }
}

// WithSource sets where announcer scripts are read from.
func WithSource(src prefabs.Source) Option {
	return func(s *Session) { s.src = src }
}

// WithListener receives every event once its frame has finished.
func WithListener(fn func(ecs.Event)) Option {
	return func(s *Session) { s.listener = fn }
}

// WithoutAnnouncer skips the banner script entirely.
func WithoutAnnouncer() Option {
	return func(s *Session) { s.announce = false }
}

// New builds an Idle session with the avatar resting on the ground.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		world:    ecs.NewWorld(),
		tuning:   prefabs.DefaultTuning(),
		src:      prefabs.Embedded,
		announce: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := s.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	var err error
	if s.state, err = entity.NewGameState(s.world, s.tuning); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if s.avatar, err = entity.NewAvatar(s.world, s.tuning); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.scheduler = s.buildScheduler()
	return s, nil
}

// buildScheduler fixes the per-frame order: kinematics, spawning, obstacles,
// coins, then cosmetics and banners.
func (s *Session) buildScheduler() *ecs.Scheduler {
	sched := ecs.NewScheduler(
		system.NewKinematicsSystem(s.tuning),
		system.NewSpawnSystem(s.tuning, s.rng),
		system.NewObstacleSystem(s.tuning),
		system.NewCoinSystem(s.tuning),
		system.NewSpinSystem(),
	)
	if s.announce {
		announcer, err := system.NewAnnouncerSystem(s.src, s.tuning)
		if err != nil {
			log.Printf("session: %v", err)
		}
		sched.Add(announcer)
	}
	sched.Add(system.NewTTLSystem())
	return sched
}

func (s *Session) gameState() *component.GameState {
	state, _ := ecs.Get(s.world, s.state, component.GameStateComponent.Kind())
	return state
}

// Start moves an Idle session into Running. It is a no-op in any other
// phase.
func (s *Session) Start() bool {
	state := s.gameState()
	if state == nil || state.Phase != component.PhaseIdle {
		return false
	}
	s.applyPending()
	s.begin(state)
	return true
}

// Restart wipes the lane, puts the avatar back on the ground and starts a
// fresh run from any phase.
func (s *Session) Restart() {
	state := s.gameState()
	if state == nil {
		return
	}

	clearOf(s.world, component.ObstacleComponent.Kind())
	clearOf(s.world, component.CoinComponent.Kind())
	clearOf(s.world, component.BannerComponent.Kind())
	s.world.Events().Drain()

	s.applyPending()
	entity.ResetAvatar(s.world, s.avatar, s.tuning)
	s.begin(state)
}

func (s *Session) begin(state *component.GameState) {
	*state = component.GameState{
		Phase: component.PhaseRunning,
		Speed: s.tuning.Speed.Initial,
	}
	s.world.Events().Push(ecs.Event{Kind: ecs.EventStarted, Entity: s.avatar, Speed: state.Speed})
}

func clearOf[T any](w *ecs.World, kind component.ComponentKind[T]) {
	for _, e := range ecs.Query(w, kind) {
		ecs.DestroyEntity(w, e)
	}
}

// Jump launches the avatar. Only a running, grounded avatar can jump.
func (s *Session) Jump() bool {
	if !s.gameState().Running() {
		return false
	}
	return system.ApplyJump(s.world, s.tuning)
}

// Tick advances one frame. Outside of Running it does nothing.
func (s *Session) Tick() {
	state := s.gameState()
	if !state.Running() {
		return
	}
	state.Frame++
	s.scheduler.Update(s.world)

	for _, evt := range s.world.Events().Drain() {
		if s.listener != nil {
			s.listener(evt)
		}
	}
}

// Advance runs n ticks.
func (s *Session) Advance(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// SetTuning validates t and queues it for the next Start or Restart. A run
// in progress keeps its constants.
func (s *Session) SetTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.pending = &t
	return nil
}

func (s *Session) applyPending() {
	if s.pending == nil {
		return
	}
	s.tuning = *s.pending
	s.pending = nil
	s.scheduler = s.buildScheduler()
	entity.ResetAvatar(s.world, s.avatar, s.tuning)
}

func (s *Session) Tuning() prefabs.Tuning {
	return s.tuning
}

// World exposes the ECS world to renderers. Callers must not mutate it.
func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Avatar() ecs.Entity {
	return s.avatar
}

func (s *Session) Phase() component.Phase {
	return s.gameState().Phase
}

func (s *Session) Score() int {
	return s.gameState().Score
}

func (s *Session) Speed() float64 {
	return s.gameState().Speed
}

// State returns a copy of the run record.
func (s *Session) State() component.GameState {
	return *s.gameState()
}

// Close releases the world. The session must not be used afterwards.
func (s *Session) Close() {
	ecs.Clear(s.world)
	s.scheduler = nil
}

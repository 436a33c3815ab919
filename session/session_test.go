package session

import (
	"errors"
	"testing"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
	"github.com/milk9111/lanerunner/ecs/system"
	"github.com/milk9111/lanerunner/prefabs"
)

// newTestSession places every spawn at the lane edge so nothing collides
// unless a test moves it.
func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithRand(system.NewSequenceRand(0.99)), WithoutAnnouncer()}, opts...)
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestNewSessionIsIdle(t *testing.T) {
	s := newTestSession(t)
	snap := s.Snapshot()

	if snap.Phase != component.PhaseIdle {
		t.Fatalf("expected idle, got %v", snap.Phase)
	}
	if snap.Avatar.Y != 0.4 || snap.Avatar.Airborne {
		t.Fatalf("expected grounded avatar, got %+v", snap.Avatar)
	}
	if len(snap.Obstacles) != 0 || len(snap.Coins) != 0 {
		t.Fatal("expected an empty lane")
	}
}

func TestIdleTicksDoNothing(t *testing.T) {
	s := newTestSession(t)
	s.Advance(1000)
	if s.Snapshot().Frame != 0 || len(s.Snapshot().Obstacles) != 0 {
		t.Fatal("idle session advanced")
	}
	if s.Jump() {
		t.Fatal("jump accepted while idle")
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	s := newTestSession(t)
	if !s.Start() {
		t.Fatal("expected start from idle")
	}
	s.Advance(10)
	if s.Start() {
		t.Fatal("start accepted while running")
	}
	if s.Snapshot().Frame != 10 {
		t.Fatalf("second start reset the run, frame %d", s.Snapshot().Frame)
	}
}

func TestFirstObstacleAfterSixHundredFrames(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	s.Advance(599)
	if n := len(s.Snapshot().Obstacles); n != 0 {
		t.Fatalf("expected no obstacle yet, got %d", n)
	}
	s.Advance(1)
	snap := s.Snapshot()
	if len(snap.Obstacles) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(snap.Obstacles))
	}
	if z := snap.Obstacles[0].Z; z < -29.91 || z > -29.89 {
		t.Fatalf("expected obstacle to have moved once from -30, got %v", z)
	}
}

func TestPassingObstaclesScores(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	s.Advance(1100)
	snap := s.Snapshot()
	if snap.Phase != component.PhaseRunning {
		t.Fatalf("expected running, got %v", snap.Phase)
	}
	if snap.Score < 1 {
		t.Fatalf("expected at least one passed obstacle, score %d", snap.Score)
	}
	if s.State().ObstaclesPassed != snap.Score {
		t.Fatalf("score %d should equal passes %d without coins", snap.Score, s.State().ObstaclesPassed)
	}
}

func TestJumpScenario(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	if !s.Jump() {
		t.Fatal("expected jump")
	}
	s.Tick()
	a := s.Snapshot().Avatar
	if a.Velocity < 0.3299 || a.Velocity > 0.3301 || a.Y < 0.7299 || a.Y > 0.7301 {
		t.Fatalf("expected v=0.33 y=0.73, got %+v", a)
	}
	if s.Jump() {
		t.Fatal("jump accepted mid-air")
	}

	s.Advance(60)
	a = s.Snapshot().Avatar
	if a.Airborne || a.Y != 0.4 {
		t.Fatalf("expected landed avatar, got %+v", a)
	}
}

// crash pulls the next obstacle onto the avatar and runs until it hits.
func crash(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 2000 && s.Phase() == component.PhaseRunning; i++ {
		s.Tick()
		ecs.ForEach2(s.World(), component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Obstacle, tr *component.Transform) {
			tr.X = 0
		})
	}
	if s.Phase() != component.PhaseGameOver {
		t.Fatal("run never ended")
	}
}

func TestGameOverFreezes(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	crash(t, s)

	before := s.Snapshot()
	s.Advance(100)
	after := s.Snapshot()

	if after.Frame != before.Frame || after.Score != before.Score {
		t.Fatal("ticks after game over changed the run")
	}
	if len(after.Obstacles) != len(before.Obstacles) || after.Obstacles[0] != before.Obstacles[0] {
		t.Fatal("obstacles moved after game over")
	}
	if after.FinalScore != after.Score {
		t.Fatalf("final score %d does not match score %d", after.FinalScore, after.Score)
	}
	if s.Jump() || s.Start() {
		t.Fatal("input accepted after game over")
	}
}

func TestRestartResets(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	crash(t, s)

	s.Restart()
	snap := s.Snapshot()
	if snap.Phase != component.PhaseRunning {
		t.Fatalf("expected running after restart, got %v", snap.Phase)
	}
	if snap.Score != 0 || snap.Speed != 0.1 || snap.Frame != 0 {
		t.Fatalf("expected fresh run, got %+v", snap)
	}
	if snap.ObstacleTimer != 0 || snap.CoinTimer != 0 {
		t.Fatal("expected spawn timers reset")
	}
	if len(snap.Obstacles) != 0 || len(snap.Coins) != 0 {
		t.Fatal("expected an empty lane")
	}
	if snap.Avatar.Y != 0.4 || snap.Avatar.Airborne || snap.Avatar.Velocity != 0 {
		t.Fatalf("expected grounded avatar, got %+v", snap.Avatar)
	}
}

func TestListenerReceivesEvents(t *testing.T) {
	var kinds []ecs.EventKind
	s := newTestSession(t, WithListener(func(evt ecs.Event) { kinds = append(kinds, evt.Kind) }))
	s.Start()
	s.Tick()

	if len(kinds) != 1 || kinds[0] != ecs.EventStarted {
		t.Fatalf("expected start event on first tick, got %v", kinds)
	}

	s.Advance(599)
	if kinds[len(kinds)-1] != ecs.EventSpawned {
		t.Fatalf("expected a spawn event, got %v", kinds)
	}

	crash(t, s)
	if kinds[len(kinds)-1] != ecs.EventGameOver {
		t.Fatalf("expected game over last, got %v", kinds)
	}
}

func TestSetTuningAppliesOnRestart(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	tuning := prefabs.DefaultTuning()
	tuning.Speed.Initial = 0.2
	if err := s.SetTuning(tuning); err != nil {
		t.Fatalf("set tuning: %v", err)
	}
	if s.Speed() != 0.1 {
		t.Fatalf("run in progress changed speed to %v", s.Speed())
	}

	s.Restart()
	if s.Speed() != 0.2 || s.Tuning().Speed.Initial != 0.2 {
		t.Fatalf("expected new initial speed, got %v", s.Speed())
	}
	s.Advance(300)
	if n := len(s.Snapshot().Obstacles); n != 1 {
		t.Fatalf("expected faster spawn cadence, got %d obstacles", n)
	}
}

func TestSetTuningRejectsInvalid(t *testing.T) {
	s := newTestSession(t)
	tuning := prefabs.DefaultTuning()
	tuning.Speed.Initial = 0

	if err := s.SetTuning(tuning); !errors.Is(err, prefabs.ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got %v", err)
	}
	s.Start()
	if s.Speed() != 0.1 {
		t.Fatalf("invalid tuning leaked into the run: %v", s.Speed())
	}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	tuning.Collision.Distance = 0
	if _, err := New(WithTuning(tuning)); !errors.Is(err, prefabs.ErrInvalidTuning) {
		t.Fatalf("expected ErrInvalidTuning, got %v", err)
	}
}

func TestAnnouncerBanner(t *testing.T) {
	s, err := New(WithRand(system.NewSequenceRand(0.99)))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer s.Close()

	s.Start()
	s.Tick()
	if got := s.Snapshot().Banner; got != "Go!" {
		t.Fatalf("expected start banner, got %q", got)
	}

	crash(t, s)
	if got := s.Snapshot().Banner; got == "" || got == "Go!" {
		t.Fatalf("expected game over banner, got %q", got)
	}
}

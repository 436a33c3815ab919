package ecs

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/lanerunner/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestRecycledSlotKeepsOldHandleDead(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be recycled, got %d", old.id(), fresh.id())
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle %v reported alive", old)
	}
	if DestroyEntity(w, old) {
		t.Fatalf("stale handle destroyed the recycled entity")
	}
	if !IsAlive(w, fresh) {
		t.Fatalf("fresh entity %v should be alive", fresh)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1.Kind()) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", Count(w, h2.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)

	if err := Add(w, e, h.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, h.Kind(), intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestDestroyStripsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}

	DestroyEntity(w, e)
	if Count(w, h.Kind()) != 0 {
		t.Fatalf("expected destroyed entity to leave the store")
	}

	// The recycled slot must not inherit the old value.
	fresh := CreateEntity(w)
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a component")
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("expected [e1 e3] in insertion order, got %v", ents)
	}
	for _, e := range ents {
		if e == e2 {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	var all []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, h.Kind(), intPtr(i))
		all = append(all, e)
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited++
		// Destroying a later entity means it is skipped, not visited dead.
		if *v == 0 {
			DestroyEntity(w, all[2])
		}
	})
	if visited != 3 {
		t.Fatalf("expected 3 visits, got %d", visited)
	}
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()

				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e3, kb, intPtr(4))

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				_ = Add(w, e, ka, intPtr(1))

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachReverseRemoval(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 6; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, h.Kind(), intPtr(i))
	}

	var visited []int
	ForEachReverse(w, h.Kind(), func(e Entity, v *int) bool {
		visited = append(visited, *v)
		if *v%2 == 0 {
			DestroyEntity(w, e)
		}
		return true
	})

	wantVisited := []int{5, 4, 3, 2, 1, 0}
	if len(visited) != len(wantVisited) {
		t.Fatalf("expected %v, got %v", wantVisited, visited)
	}
	for i := range wantVisited {
		if visited[i] != wantVisited[i] {
			t.Fatalf("expected %v, got %v", wantVisited, visited)
		}
	}

	var survivors []int
	ForEach(w, h.Kind(), func(_ Entity, v *int) { survivors = append(survivors, *v) })
	wantSurvivors := []int{1, 3, 5}
	if len(survivors) != len(wantSurvivors) {
		t.Fatalf("expected survivors %v, got %v", wantSurvivors, survivors)
	}
	for i := range wantSurvivors {
		if survivors[i] != wantSurvivors[i] {
			t.Fatalf("expected survivors %v in order, got %v", wantSurvivors, survivors)
		}
	}
}

func TestForEachReverseStops(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 3; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, h.Kind(), intPtr(i))
	}

	visits := 0
	ForEachReverse(w, h.Kind(), func(Entity, *int) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Fatalf("expected the walk to stop after one visit, got %d", visits)
	}
}

func TestClear(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	_ = Add(w, e, h.Kind(), intPtr(1))
	w.Events().Push(Event{Kind: EventStarted})

	Clear(w)

	if len(Entities(w)) != 0 || Count(w, h.Kind()) != 0 {
		t.Fatalf("expected empty world after Clear")
	}
	if len(w.Events().Pending()) != 0 {
		t.Fatalf("expected Clear to drop pending events")
	}
	if IsAlive(w, e) {
		t.Fatalf("handle survived Clear")
	}
}

func TestAddErrorNamesKind(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
	if !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if want := "Transform"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in %q", want, err.Error())
	}
}

package ecs

import "testing"

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) {
	*r.log = append(*r.log, r.name)
}

func TestSchedulerOrder(t *testing.T) {
	var got []string
	s := NewScheduler(recordSystem{"a", &got}, nil, recordSystem{"b", &got})
	s.Add(recordSystem{"c", &got})
	s.Add(nil)

	s.Update(NewWorld())

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventCoinCollected, Score: 5})
	q.Push(Event{Kind: EventGameOver, Score: 5})

	if n := len(q.Pending()); n != 2 {
		t.Fatalf("expected 2 pending, got %d", n)
	}
	drained := q.Drain()
	if len(drained) != 2 || drained[0].Kind != EventCoinCollected {
		t.Fatalf("unexpected drain %v", drained)
	}
	if q.Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}

package entity

import (
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
)

// NewBanner replaces any live banner with text that expires after frames
// ticks of running play.
func NewBanner(w *ecs.World, event, text string, frames int) ecs.Entity {
	for _, old := range ecs.Query(w, component.BannerComponent.Kind()) {
		ecs.DestroyEntity(w, old)
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.BannerComponent.Kind(), &component.Banner{Text: text, Event: event})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames})
	return e
}

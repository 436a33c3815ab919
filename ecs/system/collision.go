package system

import (
	"math"

	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/component"
)

// Distance is the Euclidean distance between two transform centers.
func Distance(a, b *component.Transform) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func avatarTransform(w *ecs.World) (*component.Transform, bool) {
	e, ok := ecs.First(w, component.AvatarTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.TransformComponent.Kind())
}

package main

import (
	"math"

	"github.com/milk9111/lanerunner/prefabs"
)

// nearZ is the closest lane depth drawn; the avatar row sits just above it.
const nearZ = 2.0

// laneView maps lane coordinates onto a top-down character grid: far depths
// at the top, the avatar near the bottom, lateral offset across columns.
type laneView struct {
	top, rows int
	center    int
	halfCols  int
	halfWidth float64
	spawnZ    float64
}

func newLaneView(width, height int, lane prefabs.LaneSpec) laneView {
	rows := height - 3
	if rows < 2 {
		rows = 2
	}
	half := width/2 - 2
	if half > 20 {
		half = 20
	}
	if half < 1 {
		half = 1
	}
	return laneView{
		top:       2,
		rows:      rows,
		center:    width / 2,
		halfCols:  half,
		halfWidth: lane.HalfWidth,
		spawnZ:    lane.SpawnZ,
	}
}

// cell returns the grid position of (x, z). ok is false outside the drawn
// depth range.
func (v laneView) cell(x, z float64) (col, row int, ok bool) {
	if z < v.spawnZ || z > nearZ {
		return 0, 0, false
	}
	t := (z - v.spawnZ) / (nearZ - v.spawnZ)
	row = v.top + int(math.Round(t*float64(v.rows-1)))

	lateral := 0.0
	if v.halfWidth > 0 {
		lateral = x / v.halfWidth
	}
	col = v.center + int(math.Round(lateral*float64(v.halfCols)))
	return col, row, true
}

// edges are the columns of the lane borders.
func (v laneView) edges() (int, int) {
	return v.center - v.halfCols - 1, v.center + v.halfCols + 1
}

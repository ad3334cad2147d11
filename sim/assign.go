package sim

import (
	"math/rand"
	"time"

	"voxport/voxel"
)

// exactMatch ends the pool scan early; nothing can beat a distance this small
// by a visible amount.
const exactMatch = 0.01

// Assignment summarizes a rebuild mapping.
type Assignment struct {
	Claimed int // voxels with a destination
	Rubble  int // voxels left without one
	Dropped int // target cells nobody could fill
}

// Assign maps every existing voxel to a cell of ds or marks it rubble.
//
// Targets are visited in dataset order and each takes the unclaimed voxel
// with the closest color; ties go to the lowest index. This is greedy, not a
// minimum-cost matching. rng only feeds the activation delays, so the pairing
// is fully determined by the colors and the target order.
func Assign(voxels []Voxel, ds voxel.Dataset, rng *rand.Rand, maxDelay time.Duration) ([]Target, Assignment) {
	targets := make([]Target, len(voxels))
	claimed := make([]bool, len(voxels))
	var res Assignment

	for _, cell := range ds {
		want := voxel.Unpack(cell.Color)
		best := -1
		bestDist := float32(9999)
		for i := range voxels {
			if claimed[i] {
				continue
			}
			d := voxel.Distance(voxels[i].Color, want)
			if d < bestDist {
				bestDist = d
				best = i
				if d < exactMatch {
					break
				}
			}
		}
		if best < 0 {
			res.Dropped++
			continue
		}
		claimed[best] = true
		targets[best] = Target{
			X:     float64(cell.X),
			Y:     float64(cell.Y),
			Z:     float64(cell.Z),
			Delay: randomDelay(rng, maxDelay),
		}
		res.Claimed++
	}

	for i := range voxels {
		if claimed[i] {
			continue
		}
		v := &voxels[i]
		targets[i] = Target{X: v.X, Y: v.Y, Z: v.Z, Rubble: true}
		res.Rubble++
	}
	return targets, res
}

func randomDelay(rng *rand.Rand, max time.Duration) time.Duration {
	if rng == nil || max <= 0 {
		return 0
	}
	return time.Duration(rng.Float64() * float64(max))
}

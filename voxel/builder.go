package voxel

import "math"

type cell struct{ x, y, z int }

// Builder accumulates cells for a dataset. Writing the same cell twice keeps
// its original position in the output and replaces its color.
type Builder struct {
	index map[cell]int
	cells Dataset
}

func NewBuilder() *Builder {
	return &Builder{index: make(map[cell]int)}
}

// round matches Math.round: halves go toward +Inf.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Set snaps (x, y, z) to the grid and writes color there.
func (b *Builder) Set(x, y, z float64, color uint32) {
	k := cell{round(x), round(y), round(z)}
	if i, ok := b.index[k]; ok {
		b.cells[i].Color = color
		return
	}
	b.index[k] = len(b.cells)
	b.cells = append(b.cells, Datum{X: k.x, Y: k.y, Z: k.z, Color: color})
}

// Box fills the axis-aligned box between two corners, stepping by one unit
// from the lower corner on each axis.
func (b *Builder) Box(x1, y1, z1, x2, y2, z2 float64, color uint32) {
	for x := math.Min(x1, x2); x <= math.Max(x1, x2); x++ {
		for y := math.Min(y1, y2); y <= math.Max(y1, y2); y++ {
			for z := math.Min(z1, z2); z <= math.Max(z1, z2); z++ {
				b.Set(x, y, z, color)
			}
		}
	}
}

// Sphere fills an ellipsoid of radius r centered at (cx, cy, cz), stretched
// vertically by sy. sy <= 0 is treated as 1.
func (b *Builder) Sphere(cx, cy, cz, r float64, color uint32, sy float64) {
	if sy <= 0 {
		sy = 1
	}
	r2 := r * r
	for x := math.Floor(cx - r); x <= math.Ceil(cx+r); x++ {
		for y := math.Floor(cy - r*sy); y <= math.Ceil(cy+r*sy); y++ {
			for z := math.Floor(cz - r); z <= math.Ceil(cz+r); z++ {
				dx := x - cx
				dy := (y - cy) / sy
				dz := z - cz
				if dx*dx+dy*dy+dz*dz <= r2 {
					b.Set(x, y, z, color)
				}
			}
		}
	}
}

// Len reports the number of distinct cells written so far.
func (b *Builder) Len() int { return len(b.cells) }

// Dataset returns the cells in insertion order. The builder may keep being used;
// the returned slice is a copy.
func (b *Builder) Dataset() Dataset {
	out := make(Dataset, len(b.cells))
	copy(out, b.cells)
	return out
}

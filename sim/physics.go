package sim

import (
	"math"
	"time"
)

// burst gives v its dismantle impulse. vy is always upward.
func (s *Sim) burst(v *Voxel) {
	p := &s.p
	v.VX = (s.rng.Float64() - 0.5) * p.BurstHorizontal
	v.VY = s.rng.Float64()*p.BurstLift + p.BurstBase
	v.VZ = (s.rng.Float64() - 0.5) * p.BurstHorizontal
	v.RVX = (s.rng.Float64() - 0.5) * p.Spin
	v.RVY = (s.rng.Float64() - 0.5) * p.Spin
	v.RVZ = (s.rng.Float64() - 0.5) * p.Spin
}

// fall integrates one dismantling tick: gravity, free spin and a lossy
// floor bounce.
func (s *Sim) fall(v *Voxel) {
	p := &s.p
	v.VY -= p.Gravity
	v.X += v.VX
	v.Y += v.VY
	v.Z += v.VZ
	v.RX += v.RVX
	v.RY += v.RVY
	v.RZ += v.RVZ

	if rest := p.RestY(); v.Y < rest {
		v.Y = rest
		v.VY *= -p.Bounce
		v.VX *= p.Friction
		v.VZ *= p.Friction
	}
}

// converge moves every active voxel toward its target and reports whether
// all targets are done.
func (s *Sim) converge(r *Rebuilding, elapsed time.Duration) bool {
	p := &s.p
	done := true
	for i := range s.voxels {
		t := &r.Targets[i]
		if t.done() {
			continue
		}
		if elapsed < t.Delay {
			done = false
			continue
		}

		v := &s.voxels[i]
		speed := p.SpeedBase + s.rng.Float64()*p.SpeedJitter
		v.X += (t.X - v.X) * speed
		v.Y += (t.Y - v.Y) * speed
		v.Z += (t.Z - v.Z) * speed
		v.RX -= v.RX * speed
		v.RY -= v.RY * speed
		v.RZ -= v.RZ * speed

		if math.Abs(t.X-v.X) < p.Epsilon && math.Abs(t.Y-v.Y) < p.Epsilon && math.Abs(t.Z-v.Z) < p.Epsilon {
			settle(v, t)
			continue
		}
		done = false
	}
	return done
}

func settle(v *Voxel, t *Target) {
	v.X, v.Y, v.Z = t.X, t.Y, t.Z
	v.RX, v.RY, v.RZ = 0, 0, 0
	v.VX, v.VY, v.VZ = 0, 0, 0
	v.RVX, v.RVY, v.RVZ = 0, 0, 0
	t.Settled = true
}

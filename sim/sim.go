// Package sim is the voxel simulation: the per-voxel kinematic state, the
// phase state machine, the physics integrator and the rebuild assigner.
//
// A Sim is not safe for concurrent use. All commands and Step calls are
// expected on the single goroutine that drives frames.
package sim

import (
	"math/rand"
	"time"

	"voxport/voxel"
)

// Voxel is the simulated state of one cube. ID is its stable index in the
// arena; only the kinematic fields change during a scene.
type Voxel struct {
	ID            int
	X, Y, Z       float64
	RX, RY, RZ    float64
	VX, VY, VZ    float64
	RVX, RVY, RVZ float64
	Color         voxel.RGB
}

// Clock supplies the time used for rebuild delays.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configure a Sim. Zero values select defaults.
type Options struct {
	Params *Params
	Clock  Clock
	Rand   *rand.Rand
}

// Sim owns the voxel arena and the current phase.
type Sim struct {
	p     Params
	clock Clock
	rng   *rand.Rand
	obs   Observer

	voxels []Voxel
	phase  Phase
}

// New returns an empty, Stable simulation. obs may be nil.
func New(obs Observer, opts Options) *Sim {
	s := &Sim{
		p:     DefaultParams(),
		clock: opts.Clock,
		rng:   opts.Rand,
		obs:   obs,
		phase: Stable{},
	}
	if opts.Params != nil {
		s.p = *opts.Params
	}
	if s.clock == nil {
		s.clock = systemClock{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.obs == nil {
		s.obs = nopObserver{}
	}
	return s
}

// Params returns the integrator tuning.
func (s *Sim) Params() Params { return s.p }

// Phase returns the current phase value.
func (s *Sim) Phase() Phase { return s.phase }

// Kind returns the current phase kind.
func (s *Sim) Kind() Kind { return s.phase.Kind() }

// Len returns the voxel count of the scene.
func (s *Sim) Len() int { return len(s.voxels) }

// Voxels exposes the arena for reading. Callers must not retain or modify it.
func (s *Sim) Voxels() []Voxel { return s.voxels }

// Load replaces the scene with one voxel per datum and forces Stable.
func (s *Sim) Load(ds voxel.Dataset) {
	s.voxels = make([]Voxel, len(ds))
	for i, d := range ds {
		s.voxels[i] = Voxel{
			ID:    i,
			X:     float64(d.X),
			Y:     float64(d.Y),
			Z:     float64(d.Z),
			Color: voxel.Unpack(d.Color),
		}
	}
	s.phase = Stable{}
	s.obs.CountChanged(len(s.voxels))
	s.obs.PhaseChanged(KindStable)
}

// Dismantle throws every voxel upward and outward. It is ignored unless the
// scene is Stable.
func (s *Sim) Dismantle() bool {
	if _, ok := s.phase.(Stable); !ok {
		return false
	}
	for i := range s.voxels {
		s.burst(&s.voxels[i])
	}
	s.phase = Dismantling{}
	s.obs.PhaseChanged(KindDismantling)
	return true
}

// Rebuild assigns the current voxels to the cells of ds and starts moving
// them. It is ignored while already Rebuilding.
func (s *Sim) Rebuild(ds voxel.Dataset) bool {
	if _, ok := s.phase.(*Rebuilding); ok {
		return false
	}
	targets, res := Assign(s.voxels, ds, s.rng, s.p.MaxDelay)
	s.phase = &Rebuilding{Targets: targets, Start: s.clock.Now(), Result: res}
	s.obs.PhaseChanged(KindRebuilding)
	return true
}

// Step advances the simulation by one tick.
func (s *Sim) Step() {
	switch ph := s.phase.(type) {
	case Dismantling:
		for i := range s.voxels {
			s.fall(&s.voxels[i])
		}
	case *Rebuilding:
		if s.converge(ph, s.clock.Now().Sub(ph.Start)) {
			s.phase = Stable{}
			s.obs.PhaseChanged(KindStable)
		}
	}
}

// Stats is a read-only summary for displays and logs.
type Stats struct {
	Kind    Kind
	Voxels  int
	Claimed int
	Rubble  int
	Dropped int
	Settled int
}

func (s *Sim) Stats() Stats {
	st := Stats{Kind: s.phase.Kind(), Voxels: len(s.voxels)}
	if r, ok := s.phase.(*Rebuilding); ok {
		st.Claimed = r.Result.Claimed
		st.Rubble = r.Result.Rubble
		st.Dropped = r.Result.Dropped
		for i := range r.Targets {
			if r.Targets[i].Settled {
				st.Settled++
			}
		}
	}
	return st
}

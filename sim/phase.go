package sim

import "time"

// Kind is the observable name of a phase.
type Kind uint8

const (
	KindStable Kind = iota
	KindDismantling
	KindRebuilding
)

func (k Kind) String() string {
	switch k {
	case KindStable:
		return "STABLE"
	case KindDismantling:
		return "DISMANTLING"
	case KindRebuilding:
		return "REBUILDING"
	default:
		return "UNKNOWN"
	}
}

// Phase is the scene-wide simulation phase. It is one of Stable, Dismantling
// or *Rebuilding; rebuild targets only exist inside the Rebuilding variant.
type Phase interface {
	Kind() Kind
}

// Stable is the resting phase. Physics does not touch voxels.
type Stable struct{}

// Dismantling lets voxels fall under gravity and bounce on the floor. It has
// no natural end.
type Dismantling struct{}

// Rebuilding moves claimed voxels toward their targets.
type Rebuilding struct {
	Targets []Target // one per voxel index
	Start   time.Time
	Result  Assignment
}

func (Stable) Kind() Kind      { return KindStable }
func (Dismantling) Kind() Kind { return KindDismantling }
func (*Rebuilding) Kind() Kind { return KindRebuilding }

// Target is the rebuild destination of one voxel.
type Target struct {
	X, Y, Z float64
	Delay   time.Duration // from rebuild start until the voxel starts moving
	Rubble  bool          // no destination; the voxel stays where it is
	Settled bool          // snapped onto the destination
}

// done reports whether the target no longer holds the rebuild open.
func (t *Target) done() bool { return t.Rubble || t.Settled }

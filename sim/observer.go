package sim

// Observer receives read-only notifications from the simulation.
type Observer interface {
	// PhaseChanged fires on every phase transition and on every load.
	PhaseChanged(k Kind)
	// CountChanged fires on every load with the new voxel count.
	CountChanged(n int)
}

// ObserverFuncs adapts two plain callbacks to Observer. Nil callbacks are skipped.
type ObserverFuncs struct {
	Phase func(Kind)
	Count func(int)
}

func (o ObserverFuncs) PhaseChanged(k Kind) {
	if o.Phase != nil {
		o.Phase(k)
	}
}

func (o ObserverFuncs) CountChanged(n int) {
	if o.Count != nil {
		o.Count(n)
	}
}

// Observers fans notifications out in order.
type Observers []Observer

func (obs Observers) PhaseChanged(k Kind) {
	for _, o := range obs {
		if o != nil {
			o.PhaseChanged(k)
		}
	}
}

func (obs Observers) CountChanged(n int) {
	for _, o := range obs {
		if o != nil {
			o.CountChanged(n)
		}
	}
}

type nopObserver struct{}

func (nopObserver) PhaseChanged(Kind) {}
func (nopObserver) CountChanged(int)  {}

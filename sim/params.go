package sim

import "time"

// Params are the tuning constants of the integrator. Velocities are in grid
// units per tick.
type Params struct {
	Gravity  float64 // subtracted from vy every dismantling tick
	Floor    float64 // voxel centers rest at Floor + 0.5
	Bounce   float64 // vy is multiplied by -Bounce on floor contact
	Friction float64 // vx, vz are multiplied by Friction on floor contact

	BurstHorizontal float64 // vx, vz drawn from [-h/2, h/2)
	BurstLift       float64 // vy drawn from [BurstBase, BurstBase+BurstLift)
	BurstBase       float64
	Spin            float64 // angular velocity drawn from [-Spin/2, Spin/2)

	SpeedBase   float64 // fraction of remaining distance covered per rebuild tick
	SpeedJitter float64 // random extra fraction per voxel per tick
	Epsilon     float64 // snap distance on every axis
	MaxDelay    time.Duration
}

// DefaultParams returns the tuning used by the portrait.
func DefaultParams() Params {
	return Params{
		Gravity:  0.06,
		Floor:    -12,
		Bounce:   0.3,
		Friction: 0.8,

		BurstHorizontal: 1.8,
		BurstLift:       1.5,
		BurstBase:       1,
		Spin:            0.4,

		SpeedBase:   0.18,
		SpeedJitter: 0.08,
		Epsilon:     0.02,
		MaxDelay:    600 * time.Millisecond,
	}
}

// RestY is the lowest center height a dismantled voxel can reach.
func (p Params) RestY() float64 { return p.Floor + 0.5 }

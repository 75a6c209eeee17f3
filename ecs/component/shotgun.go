package component

type ShotgunPhase int

const (
	ShotgunIdle ShotgunPhase = iota
	ShotgunFiring
	ShotgunReloading
)

func (p ShotgunPhase) String() string {
	switch p {
	case ShotgunIdle:
		return "idle"
	case ShotgunFiring:
		return "firing"
	case ShotgunReloading:
		return "reloading"
	default:
		return "unknown"
	}
}

// ShotgunState is a phase plus the timer that ends it. Idle has no timer.
type ShotgunState struct {
	Phase ShotgunPhase
	Timer Timer
}

const ShotgunCapacity = 2

// Shotgun is a double barrel: pressing fires the first barrel, releasing
// fires the second. The state after Firing is chosen when the shot goes off.
type Shotgun struct {
	State     ShotgunState
	NextState ShotgunState
	Shots     int

	FiringTime   float64
	ReloadTime   float64
	Damage       float64
	FalloffStart float64
	FalloffEnd   float64
	CastRadius   float64
	Range        float64
}

// ShotgunStep reports what happened during one Step.
type ShotgunStep struct {
	Fired    bool
	Reloaded bool
}

var ShotgunComponent = NewComponent[Shotgun]()

func (s *Shotgun) shouldFire(in *Input) bool {
	if s.State.Phase != ShotgunIdle {
		return false
	}
	switch s.Shots {
	case ShotgunCapacity:
		return in.FirePressed
	case 1:
		return in.FireJustReleased
	}
	return false
}

// Step advances the state machine by dt using this tick's input.
func (s *Shotgun) Step(dt float64, in *Input) ShotgunStep {
	var out ShotgunStep
	if in == nil {
		in = &Input{}
	}

	switch s.State.Phase {
	case ShotgunIdle:
		if !s.shouldFire(in) {
			return out
		}
		s.State = ShotgunState{Phase: ShotgunFiring, Timer: NewTimer(s.FiringTime, TimerOnce)}
		s.Shots--
		if s.Shots <= 0 {
			s.Shots = 0
			s.NextState = ShotgunState{Phase: ShotgunReloading, Timer: NewTimer(s.ReloadTime, TimerOnce)}
		} else {
			s.NextState = ShotgunState{Phase: ShotgunIdle}
		}
		out.Fired = true

	case ShotgunFiring:
		if !s.State.Timer.Tick(dt).Finished() {
			return out
		}
		s.State = s.NextState
		if s.State.Phase == ShotgunReloading {
			out.Reloaded = true
		}

	case ShotgunReloading:
		if !s.State.Timer.Tick(dt).Finished() {
			return out
		}
		s.State = ShotgunState{Phase: ShotgunIdle}
		s.Shots = ShotgunCapacity
	}
	return out
}

// DamageAt is full damage up to FalloffStart, falling linearly to zero at
// FalloffEnd and clamped at zero past it.
func (s *Shotgun) DamageAt(dist float64) float64 {
	if dist <= s.FalloffStart {
		return s.Damage
	}
	span := s.FalloffEnd - s.FalloffStart
	if span <= 0 {
		return 0
	}
	t := (dist - s.FalloffStart) / span
	if d := s.Damage * (1 - t); d > 0 {
		return d
	}
	return 0
}

package component

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts simulated seconds. It only advances when ticked, so freezing
// the fixed clock freezes every timer with it.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished     bool
	justFinished bool
	times        int
}

func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// NewFinishedTimer returns a once timer that has already elapsed.
func NewFinishedTimer(duration float64) Timer {
	return Timer{Duration: duration, Elapsed: duration, Mode: TimerOnce, finished: true}
}

// Tick advances the timer by dt seconds. A repeating timer wraps and counts
// how many periods completed during this tick.
func (t *Timer) Tick(dt float64) *Timer {
	t.justFinished = false
	t.times = 0
	if t.Mode == TimerOnce && t.finished {
		return t
	}
	if t.Mode == TimerRepeating {
		t.finished = false
	}
	if dt > 0 {
		t.Elapsed += dt
	}
	if t.Elapsed < t.Duration {
		return t
	}

	t.finished = true
	t.justFinished = true
	switch t.Mode {
	case TimerRepeating:
		if t.Duration <= 0 {
			t.times = 1
			t.Elapsed = 0
			return t
		}
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
			t.times++
		}
	default:
		t.Elapsed = t.Duration
		t.times = 1
	}
	return t
}

func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// TimesFinished reports the periods completed by the last Tick.
func (t *Timer) TimesFinished() int {
	return t.times
}

func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
	t.times = 0
}

func (t *Timer) SetDuration(d float64) {
	t.Duration = d
}

func (t *Timer) Remaining() float64 {
	if r := t.Duration - t.Elapsed; r > 0 {
		return r
	}
	return 0
}

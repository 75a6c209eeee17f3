package ecs

// System advances one slice of the simulation for a tick. C is the
// per-tick context the scheduler hands to every system.
type System[C any] interface {
	Update(w *World, ctx C)
}

// SystemFunc adapts a plain function to System.
type SystemFunc[C any] func(w *World, ctx C)

func (f SystemFunc[C]) Update(w *World, ctx C) {
	f(w, ctx)
}

// Scheduler runs systems in registration order.
type Scheduler[C any] struct {
	systems []System[C]
}

func NewScheduler[C any](systems ...System[C]) *Scheduler[C] {
	copied := make([]System[C], 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler[C]{systems: copied}
}

func (s *Scheduler[C]) Add(system System[C]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler[C]) Update(w *World, ctx C) {
	for _, system := range s.systems {
		system.Update(w, ctx)
	}
}

func (s *Scheduler[C]) Systems() []System[C] {
	systems := make([]System[C], 0, len(s.systems))
	return append(systems, s.systems...)
}

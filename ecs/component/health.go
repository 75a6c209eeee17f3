package component

// Health may go negative while damage lands. Dead latches on the first
// transition to zero or below and is never cleared.
type Health struct {
	Current float64
	Dead    bool
}

func NewHealth(health float64) *Health {
	return &Health{Current: health, Dead: health <= 0}
}

var HealthComponent = NewComponent[Health]()

package component

// Player marks the controlled character. Invulnerability starts finished so
// the first hit lands; DeathTimer only runs once Dying is set.
type Player struct {
	Invulnerability Timer
	DeathTimer      Timer
	Dying           bool
	Hurts           int
}

var PlayerComponent = NewComponent[Player]()

package component

// Spawner emits one skull each time Timer completes a period and destroys
// itself once SkullsLeft reaches zero.
type Spawner struct {
	SkullsLeft int
	Timer      Timer
}

var SpawnerComponent = NewComponent[Spawner]()

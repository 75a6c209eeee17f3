package component

// FireSkull marks an enemy skull.
type FireSkull struct{}

var FireSkullComponent = NewComponent[FireSkull]()

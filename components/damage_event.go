package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on a target and consumed by the combat system.
// An Amount of zero is a miss.
type DamageEventData struct {
	Amount   int
	Critical bool
	Heal     bool
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

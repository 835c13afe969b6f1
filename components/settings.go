package components

import "github.com/yohamta/donburi"

// SettingsData stores runtime toggles of the demo
type SettingsData struct {
	Debug  bool
	Paused bool
}

var Settings = donburi.NewComponentType[SettingsData]()

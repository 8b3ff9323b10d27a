package components

import (
	cfg "github.com/automoto/trapschool/config"
	"github.com/yohamta/donburi"
)

// AudioData stores pending sound effects for the current tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

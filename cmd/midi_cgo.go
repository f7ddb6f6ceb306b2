//go:build cgo

package cmd

import (
	"github.com/vsariola/gamesound/scene"
	"github.com/vsariola/gamesound/scene/gomidi"
)

func NewMidiContext(broker *scene.Broker, mapping scene.MIDIConfig) scene.MIDIContext {
	return gomidi.NewContext(broker, mapping)
}

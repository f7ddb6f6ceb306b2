//go:build !cgo

package cmd

import (
	"github.com/vsariola/gamesound/scene"
)

func NewMidiContext(broker *scene.Broker, mapping scene.MIDIConfig) scene.MIDIContext {
	// with no cgo, we cannot use MIDI, so return a null context
	return scene.NullMIDIContext{}
}

package scene

import (
	"strings"

	"gitlab.com/gomidi/midi/v2"
)

type (
	// MIDIContext lists the MIDI inputs of the system. Notes played on an
	// open input press the regions mapped to them in MIDIConfig.
	MIDIContext interface {
		Inputs(yield func(input MIDIInputDevice) bool)
		Close()
		Support() MIDISupport
	}

	MIDIInputDevice interface {
		Open() error
		Close() error
		IsOpen() bool
		String() string
	}

	MIDISupport int

	// NullMIDIContext is used when the binary was built without MIDI support.
	NullMIDIContext struct{}
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

func (m NullMIDIContext) Inputs(yield func(input MIDIInputDevice) bool) {}
func (m NullMIDIContext) Close()                                        {}
func (m NullMIDIContext) Support() MIDISupport                          { return MIDISupportNotCompiled }

func (s MIDISupport) String() string {
	switch s {
	case MIDISupportNoDriver:
		return "no driver"
	case MIDISupported:
		return "supported"
	}
	return "not compiled"
}

// MIDITrigger turns a note on message into a trigger of the region mapped to
// the note. Note on with zero velocity is a note off and triggers nothing.
func MIDITrigger(msg midi.Message, cfg MIDIConfig) (TriggerMsg, bool) {
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) || velocity == 0 {
		return TriggerMsg{}, false
	}
	region := cfg.RegionForNote(int(key))
	if region == NoRegion {
		return TriggerMsg{}, false
	}
	return TriggerMsg{Region: region, Source: "midi"}, true
}

// FindMIDIInputByPrefix returns the first input whose name starts with prefix.
// An empty prefix matches the first input.
func FindMIDIInputByPrefix(m MIDIContext, prefix string) (MIDIInputDevice, bool) {
	for input := range m.Inputs {
		if strings.HasPrefix(input.String(), prefix) {
			return input, true
		}
	}
	return nil, false
}

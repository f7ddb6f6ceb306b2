package gomidi

import (
	"errors"
	"fmt"

	"github.com/vsariola/gamesound/scene"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	// RTMIDIContext listens to one MIDI input at a time and forwards the notes
	// mapped in the config to the scene through the broker.
	RTMIDIContext struct {
		driver    *rtmididrv.Driver
		currentIn drivers.In
		stop      func()
		broker    *scene.Broker
		mapping   scene.MIDIConfig
	}

	RTMIDIDevice struct {
		context *RTMIDIContext
		in      drivers.In
	}
)

// NewContext opens the driver. If that fails, the context works but has no
// inputs.
func NewContext(broker *scene.Broker, mapping scene.MIDIConfig) *RTMIDIContext {
	m := RTMIDIContext{broker: broker, mapping: mapping}
	// there's not much we can do if this fails, so just use m.driver = nil to
	// indicate no driver available
	m.driver, _ = rtmididrv.New()
	return &m
}

func (m *RTMIDIContext) Inputs(yield func(scene.MIDIInputDevice) bool) {
	if m.driver == nil {
		return
	}
	ins, err := m.driver.Ins()
	if err != nil {
		return
	}
	for _, in := range ins {
		if !yield(RTMIDIDevice{context: m, in: in}) {
			break
		}
	}
}

func (m *RTMIDIContext) Support() scene.MIDISupport {
	if m.driver == nil {
		return scene.MIDISupportNoDriver
	}
	return scene.MIDISupported
}

func (m *RTMIDIContext) Close() {
	if m.driver == nil {
		return
	}
	m.closeInput()
	m.driver.Close()
}

func (m *RTMIDIContext) closeInput() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
	if m.currentIn != nil && m.currentIn.IsOpen() {
		m.currentIn.Close()
	}
	m.currentIn = nil
}

func (m *RTMIDIContext) HandleMessage(msg midi.Message, timestampms int32) {
	if t, ok := scene.MIDITrigger(msg, m.mapping); ok {
		scene.TrySend(m.broker.ToScene, any(t)) // if the channel is full, just drop the message
	}
}

// Open opens the input, closing the currently open one if necessary.
func (d RTMIDIDevice) Open() error {
	m := d.context
	if m.currentIn == d.in && d.in.IsOpen() {
		return nil
	}
	if m.driver == nil {
		return errors.New("no driver available")
	}
	m.closeInput()
	if err := d.in.Open(); err != nil {
		return fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stop, err := midi.ListenTo(d.in, m.HandleMessage)
	if err != nil {
		d.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	m.currentIn = d.in
	m.stop = stop
	return nil
}

func (d RTMIDIDevice) Close() error {
	if d.context.currentIn == d.in {
		d.context.closeInput()
		return nil
	}
	return d.in.Close()
}

func (d RTMIDIDevice) IsOpen() bool {
	return d.in.IsOpen()
}

func (d RTMIDIDevice) String() string {
	return d.in.String()
}

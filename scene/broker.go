package scene

import (
	"time"
)

type (
	// Broker carries messages from other goroutines (MIDI input, signal
	// handlers) to the GUI goroutine that owns the scene. Every recipient has
	// its own channel.
	//
	// For closing the GUI there are two channels: CloseGUI has a capacity of
	// 1, so an empty message can always be sent to it without blocking; if it
	// is full, the GUI is closing already. FinishedGUI is closed by the GUI
	// when it has cleaned up; nothing is ever sent to it. Wait for it with a
	// timeout:
	//    select {
	//      case <-FinishedGUI:
	//      case <-time.After(3 * time.Second):
	//    }
	Broker struct {
		ToScene chan any

		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// TriggerMsg presses a region as if it was clicked. Source tells where the
	// trigger came from, for the status line.
	TriggerMsg struct {
		Region RegionID
		Source string
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToScene:     make(chan any, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}

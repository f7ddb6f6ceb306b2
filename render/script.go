package render

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/vsariola/gamesound/scene"
	"gopkg.in/yaml.v3"
)

type (
	// Script is a list of presses to replay on a headless scene.
	Script struct {
		Window   Window
		Duration time.Duration
		Events   []Event
	}

	Window struct {
		Width  float32
		Height float32
	}

	// Event presses either a region by name or a point of the window.
	Event struct {
		At     time.Duration
		Region string
		X, Y   *float32
	}
)

const defaultDuration = 5 * time.Second

func DefaultWindow() Window {
	return Window{Width: 800, Height: 600}
}

// ParseScript decodes a YAML script, checking that every event names a region
// or a point.
func ParseScript(data []byte) (Script, error) {
	s := Script{Window: DefaultWindow()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, fmt.Errorf("could not parse script: %w", err)
	}
	for i, e := range s.Events {
		if e.At < 0 {
			return Script{}, fmt.Errorf("event %d: negative time %v", i, e.At)
		}
		if e.Region != "" {
			if id, ok := scene.ParseRegionID(e.Region); !ok || id == scene.NoRegion {
				return Script{}, fmt.Errorf("event %d: unknown region %q", i, e.Region)
			}
			continue
		}
		if e.X == nil || e.Y == nil {
			return Script{}, fmt.Errorf("event %d: needs a region or both x and y", i)
		}
	}
	slices.SortStableFunc(s.Events, func(a, b Event) int {
		return cmp.Compare(a.At, b.At)
	})
	if s.Duration <= 0 {
		s.Duration = defaultDuration
		if n := len(s.Events); n > 0 {
			s.Duration = max(s.Duration, s.Events[n-1].At+time.Second)
		}
	}
	return s, nil
}

func ReadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("could not read script: %w", err)
	}
	return ParseScript(data)
}

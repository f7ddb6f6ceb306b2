package scene

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/gamesound/engine"
)

type (
	// Status is the data available to the status line template.
	Status struct {
		Stats   Stats
		Music   bool    // background track loaded
		Pan     float64 // of the effect channel
		Volume  float64
		Bend    float64
		Voices  int
		PeakDB  float64 // louder of the two output channels, dBFS
		RMSDB   float64
		Version string
	}

	StatusLine struct {
		tmpl *template.Template
	}
)

// NewStatusLine parses a status line template. The sprig functions are
// available in the template.
func NewStatusLine(text string) (*StatusLine, error) {
	tmpl, err := template.New("status").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("could not parse status template: %w", err)
	}
	return &StatusLine{tmpl: tmpl}, nil
}

func (l *StatusLine) Render(st Status) (string, error) {
	var b strings.Builder
	if err := l.tmpl.Execute(&b, st); err != nil {
		return "", fmt.Errorf("could not execute status template: %w", err)
	}
	return b.String(), nil
}

// Status collects the current status of the scene, with the output level
// measured by the controller.
func (s *Scene) Status(level engine.Level) Status {
	st := Status{
		Stats:  s.stats,
		Music:  s.background.Player() != nil,
		PeakDB: engine.Decibels(max(level.Peak[0], level.Peak[1])),
		RMSDB:  engine.Decibels(max(level.RMS[0], level.RMS[1])),
	}
	if s.effect != nil {
		st.Pan = s.effect.Pan()
		st.Volume = s.effect.Volume()
		st.Bend = s.effect.PitchBend()
		st.Voices = s.effect.Voices()
	}
	return st
}

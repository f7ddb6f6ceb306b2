package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type (
	// Config holds everything about the scene that is not code: which assets
	// to play, the labels and the few knobs of the behavior. The defaults are
	// embedded in the binary and can be overridden field by field by a user
	// config file.
	Config struct {
		Background BackgroundConfig
		Effect     EffectConfig
		// LabelOffset is the vertical distance of the labels from the center
		// of the window, in dp.
		LabelOffset float32
		FontSize    float32
		// SettleTolerance is how close to 1 the vertical scale of the
		// background label must be for a press to be accepted.
		SettleTolerance float64
		// ReloadEffectOnToggle also throws away and reloads the effect channel
		// every time the background track is toggled.
		ReloadEffectOnToggle bool
		// FadeOut is how long the sounds are faded out when the scene closes.
		FadeOut time.Duration
		Tip     TipConfig
		MIDI    MIDIConfig
		// Status is a text/template for the status line, see Status.
		Status string
	}

	Asset struct {
		Name string
		Ext  string
	}

	BackgroundConfig struct {
		Asset  Asset
		Volume float64
		Label  string
	}

	EffectConfig struct {
		Asset Asset
		// Cents tunes the effect sampler, 100 cents = 1 semitone.
		Cents  int
		Volume float64
		Label  string
	}

	TipConfig struct {
		Enabled  bool
		Delay    time.Duration
		Duration time.Duration
		Message  string
	}

	// MIDIConfig maps MIDI note numbers to the regions they press.
	MIDIConfig struct {
		Background int
		Effect     int
	}
)

//go:embed default.yml
var defaultConfigYaml []byte

// DefaultConfig returns the embedded defaults.
func DefaultConfig() Config {
	var cfg Config
	if err := decodeConfig(defaultConfigYaml, &cfg); err != nil {
		panic(fmt.Errorf("failed to unmarshal default config: %w", err))
	}
	return cfg
}

// LoadConfig returns the defaults overridden by the file at path. If path is
// empty, scene.yml in the user config directory is used if it exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "gamesound", "scene.yml")
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	if err := decodeConfig(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("could not parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

// RegionForNote returns the region a MIDI note presses, or NoRegion.
func (c MIDIConfig) RegionForNote(note int) RegionID {
	switch note {
	case c.Background:
		return BackgroundRegion
	case c.Effect:
		return EffectRegion
	}
	return NoRegion
}

package gioui

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/unit"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window        WindowPreferences
		LabelCase     string // none, title, upper or lower
		ShowStatus    bool
		ShowVuMeter   bool
		RecordSeconds int
		YmlError      error `yaml:"-"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return false, err
	}
	path := filepath.Join(configDir, "gamesound", filename)
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.UnmarshalStrict(bytes, target)
	return true, err
}

func MakePreferences() Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

// Caser returns the casing applied to the region labels.
func (p Preferences) Caser() (cases.Caser, bool) {
	switch strings.ToLower(p.LabelCase) {
	case "title":
		return cases.Title(language.English), true
	case "upper":
		return cases.Upper(language.English), true
	case "lower":
		return cases.Lower(language.English), true
	}
	return cases.Caser{}, false
}

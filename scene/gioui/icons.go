package gioui

import (
	"log"

	"gioui.org/widget"
	"github.com/vsariola/gamesound/scene"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var iconCache = map[*byte]*widget.Icon{}

// widgetForIcon returns a widget for IconVG data, but caching the results
func widgetForIcon(icon []byte) *widget.Icon {
	if widget, ok := iconCache[&icon[0]]; ok {
		return widget
	}
	widget, err := widget.NewIcon(icon)
	if err != nil {
		log.Fatal(err)
	}
	iconCache[&icon[0]] = widget
	return widget
}

// regionIcon is drawn next to the label of a region; for the background it
// tells whether the music is on.
func regionIcon(id scene.RegionID, musicOn bool) *widget.Icon {
	switch id {
	case scene.BackgroundRegion:
		if musicOn {
			return widgetForIcon(icons.AVVolumeUp)
		}
		return widgetForIcon(icons.AVVolumeOff)
	case scene.EffectRegion:
		return widgetForIcon(icons.AVMusicNote)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"time"

	"gioui.org/app"
	"github.com/gopxl/beep/v2"
	"github.com/vsariola/gamesound"
	"github.com/vsariola/gamesound/assets"
	"github.com/vsariola/gamesound/cmd"
	"github.com/vsariola/gamesound/engine"
	"github.com/vsariola/gamesound/oto"
	"github.com/vsariola/gamesound/scene"
	"github.com/vsariola/gamesound/scene/gioui"
	"github.com/vsariola/gamesound/version"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var configFile = flag.String("config", "", "read the scene config from `file` instead of the user config directory")
var assetDir = flag.String("assets", "", "load the sounds from `directory` instead of the embedded ones; changed files are reloaded")
var defaultMidiInput = flag.String("midi-input", "", "connect MIDI input to matching device name prefix")
var versionFlag = flag.Bool("version", false, "print version and exit")

func main() {
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	var f *os.File
	if *cpuprofile != "" {
		var err error
		f, err = os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}
	cfg, err := scene.LoadConfig(*configFile)
	if err != nil {
		log.Printf("using default config: %v", err)
	}
	fsys, err := assets.Open(*assetDir)
	if err != nil {
		log.Fatal("could not open assets: ", err)
	}
	cache := engine.NewClipCache(0)
	var watcher *assets.Watcher
	if *assetDir != "" {
		if watcher, err = assets.Watch(*assetDir, cache.Invalidate); err != nil {
			log.Printf("assets will not be reloaded: %v", err)
		}
	}
	audioContext, err := oto.NewContext()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	broker := scene.NewBroker()
	midiContext := cmd.NewMidiContext(broker, cfg.MIDI)
	if isFlagPassed("midi-input") {
		input, ok := scene.FindMIDIInputByPrefix(midiContext, *defaultMidiInput)
		if ok {
			if err := input.Open(); err != nil {
				log.Printf("failed to open MIDI input '%s': %v", input, err)
			}
		} else {
			log.Printf("no MIDI input device found with prefix '%s' (MIDI %v)", *defaultMidiInput, midiContext.Support())
		}
	}

	controller := engine.NewController(beep.SampleRate(gamesound.SampleRate))
	loader := engine.Loader{FS: fsys, SampleRate: controller.SampleRate(), Cache: cache}
	s, err := scene.New(cfg, controller, loader)
	if err != nil {
		log.Fatal(err)
	}
	prefs := gioui.MakePreferences()
	recorder := engine.NewRecorder(prefs.RecordSeconds * gamesound.SampleRate)
	view := gioui.NewSceneView(s, broker, controller, prefs)
	view.Recorder = recorder
	view.Version = version.VersionOrHash

	audioCloser := audioContext.Play(func(buf gamesound.AudioBuffer) error {
		if err := controller.Render(buf); err != nil {
			return err
		}
		recorder.Write(buf)
		return nil
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		scene.TrySend(broker.CloseGUI, struct{}{})
	}()

	go func() {
		view.Main()
		// let the fade out finish before cutting the audio
		deadline := time.Now().Add(cfg.FadeOut + time.Second)
		for controller.Fading() > 0 && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		audioCloser.Close()
		midiContext.Close()
		if watcher != nil {
			watcher.Close()
		}
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		if *memprofile != "" {
			f, err := os.Create(*memprofile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
		os.Exit(0)
	}()
	app.Main()
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

package main

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/spf13/cobra"
	"github.com/vsariola/gamesound"
	"github.com/vsariola/gamesound/assets"
	"github.com/vsariola/gamesound/engine"
	"github.com/vsariola/gamesound/render"
	"github.com/vsariola/gamesound/scene"
	"github.com/vsariola/gamesound/version"
	"golang.org/x/term"
)

var (
	configFile string
	assetDir   string
	outFile    string
	pcm16      bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:     "gamesound-render [script.yml]",
	Short:   "Render the sound scene offline to a .wav file",
	Long:    `Run the sound scene without a window, replaying the presses listed in a YAML script, and write the mixed output to a .wav file. Without a script, the background music is started and the effect is played once.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.VersionOrHash,
	RunE:    runRender,
}

const defaultScript = `
duration: 5s
events:
  - {at: 0s, region: background}
  - {at: 1s, region: effect}
`

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "scene config file (default: the user config directory)")
	rootCmd.Flags().StringVarP(&assetDir, "assets", "a", "", "directory to load the sounds from (default: the embedded sounds)")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "gamesound.wav", "output .wav file")
	rootCmd.Flags().BoolVar(&pcm16, "pcm16", false, "write 16-bit PCM instead of 32-bit float")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print progress")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := scene.LoadConfig(configFile)
	if err != nil {
		return err
	}
	var script render.Script
	if len(args) > 0 {
		script, err = render.ReadScript(args[0])
	} else {
		script, err = render.ParseScript([]byte(defaultScript))
	}
	if err != nil {
		return err
	}
	fsys, err := assets.Open(assetDir)
	if err != nil {
		return fmt.Errorf("opening assets: %w", err)
	}
	res, err := render.Run(cfg, loader(fsys), script, progressBar(cmd))
	if err != nil {
		return err
	}
	data, err := res.Audio.Wav(pcm16, gamesound.SampleRate)
	if err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %.2f s, %d presses accepted, %d ignored\n",
			outFile, float64(len(res.Audio))/gamesound.SampleRate, res.Accepted, res.Ignored)
	}
	return nil
}

func loader(fsys fs.FS) engine.Loader {
	return engine.Loader{FS: fsys, SampleRate: beep.SampleRate(gamesound.SampleRate)}
}

// progressBar draws the progress on stderr when it is a terminal.
func progressBar(cmd *cobra.Command) func(float64) {
	fd := int(os.Stderr.Fd())
	if quiet || !term.IsTerminal(fd) {
		return nil
	}
	width := 40
	if w, _, err := term.GetSize(fd); err == nil {
		width = max(min(w-10, 60), 10)
	}
	last := -1
	return func(p float64) {
		n := int(p * float64(width))
		if n == last {
			return
		}
		last = n
		fmt.Fprintf(cmd.ErrOrStderr(), "\r[%s%s] %3.0f%%", strings.Repeat("#", n), strings.Repeat(".", width-n), p*100)
		if p >= 1 {
			fmt.Fprintln(cmd.ErrOrStderr())
		}
	}
}

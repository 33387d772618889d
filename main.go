package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/minikomi/fretboye/internal/config"
	"github.com/minikomi/fretboye/internal/fretboard"
	"github.com/minikomi/fretboye/internal/logging"
	"github.com/minikomi/fretboye/internal/midiout"

	driver "github.com/minikomi/rtmididrv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func init() {
	// SDL calls must come from the main thread.
	runtime.LockOSThread()
}

func logTap(ev fretboard.TapEvent) {
	log.Info().
		Str("note", ev.Note).
		Int("fret", ev.Fret).
		Int("string", ev.String).
		Str("pitch", ev.Pitch.String()).
		Msg("note tapped")
}

func run(cfg config.Config) int {
	fc, err := cfg.Fretboard()
	if err != nil {
		log.Error().Err(err).Msg("bad fretboard config")
		return 1
	}
	board, err := fretboard.New(fc)
	if err != nil {
		log.Error().Err(err).Msg("error building fretboard")
		return 1
	}
	board.OnTap(logTap)

	var fw *midiout.Forwarder
	if cfg.MIDI.Enabled {
		drv, err := driver.New()
		if err != nil {
			log.Error().Err(err).Msg("error opening midi driver")
			return 5
		}
		defer drv.Close()

		outs, err := drv.Outs()
		if err != nil {
			log.Error().Err(err).Msg("error listing midi out ports")
			return 5
		}
		out, err := midiout.SelectOut(outs, cfg.MIDI.Port)
		if err != nil {
			log.Error().Err(err).Msg("error selecting midi out port")
			return 5
		}
		if err := out.Open(); err != nil {
			log.Error().Err(err).Str("port", out.String()).Msg("error opening midi out port")
			return 5
		}
		defer out.Close()

		fw = midiout.NewForwarder(midiout.CreateMidiWriterTo(out, cfg.MIDI.Channel), cfg.MIDI.Velocity)
		defer fw.Release()
		board.OnTap(fw.HandleTap)
		log.Info().Str("port", out.String()).Msg("forwarding taps to midi")
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Error().Err(err).Msg("failed to init sdl")
		return 1
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		log.Error().Err(err).Msg("failed to init ttf")
		return 1
	}
	defer ttf.Quit()

	window, err := sdl.CreateWindow(cfg.Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Window.Width, cfg.Window.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		log.Error().Err(err).Msg("failed to create window")
		return 1
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Error().Err(err).Msg("failed to create renderer")
		return 2
	}
	defer renderer.Destroy()

	// logical size keeps the layout and mouse coordinates independent of
	// window size and pixel density
	if err := renderer.SetLogicalSize(cfg.Window.Width, cfg.Window.Height); err != nil {
		log.Error().Err(err).Msg("failed to set logical size")
		return 2
	}

	p := newPainter(renderer, cfg.Font.Path)
	defer p.Close()

	scene := board.Scene()
	if err := p.Draw(scene); err != nil {
		log.Error().Err(err).Msg("failed to draw fretboard")
		return 3
	}
	log.Debug().Int("markers", len(scene.Markers)).Msg("fretboard drawn")

	in := &input{board: board, forwarder: fw, running: true}
	for in.running {
		event := sdl.WaitEvent()
		switch ev := event.(type) {
		case *sdl.KeyboardEvent:
			in.HandleKeyEvent(ev)
		case *sdl.MouseButtonEvent:
			in.HandleMouseButtonEvent(ev)
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_EXPOSED || ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				if err := p.Draw(scene); err != nil {
					log.Error().Err(err).Msg("failed to redraw fretboard")
					return 3
				}
			}
		case *sdl.QuitEvent:
			log.Debug().Msg("quit")
			in.running = false
		}
	}
	return 0
}

func ports() error {
	drv, err := driver.New()
	if err != nil {
		return err
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		return err
	}
	outs, err := drv.Outs()
	if err != nil {
		return err
	}
	midiout.PrintInPorts(os.Stdout, ins)
	midiout.PrintOutPorts(os.Stdout, outs)
	return nil
}

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "fretboye",
		Short: "Guitar fretboard note diagram",
		Long:  `Draws a six string, twelve fret guitar neck with every note labelled. Click a note to log it.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, meta, err := config.GetConfig(cmd, configFile)
			if err != nil {
				fmt.Printf("error getting config: %v\n", err)
				os.Exit(1)
			}
			if err := cfg.Validate(); err != nil {
				fmt.Printf("error validating config: %v\n", err)
				os.Exit(1)
			}
			closeLog, err := logging.Setup(cfg.Log)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
			if meta.FileNotFound {
				log.Warn().Str("path", configFile).Msg("config file not found, using defaults")
			}
			code := run(cfg)
			closeLog()
			os.Exit(code)
		},
	}
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to config file")
	config.DefineFlags(rootCmd)

	rootCmd.AddCommand(
		notesCommand(),
		portsCommand(),
		checkConfigCommand(),
		defaultConfigCommand(),
		versionCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/minikomi/fretboye/internal/fretboard"
	"github.com/minikomi/fretboye/internal/note"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const EnvPrefix = "FRETBOYE"

type Config struct {
	Window Window `mapstructure:"window" json:"window" toml:"window" yaml:"window"`
	Bar    Bar    `mapstructure:"bar" json:"bar" toml:"bar" yaml:"bar"`
	// Tuning lists open string names top to bottom.
	Tuning  []string `mapstructure:"tuning" json:"tuning" toml:"tuning" yaml:"tuning"`
	Octaves []int    `mapstructure:"octaves" json:"octaves" toml:"octaves" yaml:"octaves"`
	Font    Font     `mapstructure:"font" json:"font" toml:"font" yaml:"font"`
	Log     Log      `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
	MIDI    MIDI     `mapstructure:"midi" json:"midi" toml:"midi" yaml:"midi"`
}

type Window struct {
	Title  string `mapstructure:"title" json:"title" toml:"title" yaml:"title"`
	Width  int32  `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height int32  `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
}

type Bar struct {
	Width        float64 `mapstructure:"width" json:"width" toml:"width" yaml:"width"`
	Height       float64 `mapstructure:"height" json:"height" toml:"height" yaml:"height"`
	EdgeGap      float64 `mapstructure:"edge_gap" json:"edge_gap" toml:"edge_gap" yaml:"edge_gap"`
	MarkerOffset float64 `mapstructure:"marker_offset" json:"marker_offset" toml:"marker_offset" yaml:"marker_offset"`
	MarkerRadius float64 `mapstructure:"marker_radius" json:"marker_radius" toml:"marker_radius" yaml:"marker_radius"`
}

type Font struct {
	Path     string `mapstructure:"path" json:"path" toml:"path" yaml:"path"`
	NoteSize int    `mapstructure:"note_size" json:"note_size" toml:"note_size" yaml:"note_size"`
	FretSize int    `mapstructure:"fret_size" json:"fret_size" toml:"fret_size" yaml:"fret_size"`
}

type Log struct {
	// Level is one of trace, debug, info, warn, error, none.
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	File  string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

type MIDI struct {
	Enabled  bool  `mapstructure:"enabled" json:"enabled" toml:"enabled" yaml:"enabled"`
	Port     int   `mapstructure:"port" json:"port" toml:"port" yaml:"port"`
	Velocity uint8 `mapstructure:"velocity" json:"velocity" toml:"velocity" yaml:"velocity"`
	Channel  uint8 `mapstructure:"channel" json:"channel" toml:"channel" yaml:"channel"`
}

// Meta describes how the config was loaded.
type Meta struct {
	FileNotFound bool
}

var defaults = map[string]any{
	"window.title":      "🎸",
	"window.width":      1920,
	"window.height":     1080,
	"bar.width":         1500,
	"bar.height":        150,
	"bar.edge_gap":      0.05,
	"bar.marker_offset": 15,
	"bar.marker_radius": 12,
	"tuning":            []string{"E", "B", "G", "D", "A", "E"},
	"octaves":           []int{4, 3, 3, 3, 2, 2},
	"font.path":         "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"font.note_size":    fretboard.NoteTextSize,
	"font.fret_size":    fretboard.FretNumberSize,
	"log.level":         "info",
	"log.file":          "",
	"midi.enabled":      false,
	"midi.port":         0,
	"midi.velocity":     90,
	"midi.channel":      0,
}

// DefineFlags adds the flags that GetConfig binds over config file values.
func DefineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("log.level", "", "info", "log level: trace, debug, info, warn, error or none")
	cmd.Flags().StringP("log.file", "", "", "optional log file, stdout when empty")
	cmd.Flags().StringP("font.path", "", defaults["font.path"].(string), "TrueType font for labels")
	cmd.Flags().BoolP("midi.enabled", "m", false, "forward tapped notes to a MIDI out port")
	cmd.Flags().IntP("midi.port", "p", 0, "MIDI out port number")
}

var bindPFlags = []string{"log.level", "log.file", "font.path", "midi.enabled", "midi.port"}

// stringToAnySliceHookFunc splits a string headed for a non-string slice,
// e.g. FRETBOYE_OCTAVES=4,3,3,3,2,2. Weak typing converts the elements.
func stringToAnySliceHookFunc(sep string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() == reflect.String {
			return data, nil
		}
		raw := data.(string)
		if raw == "" {
			return []string{}, nil
		}
		return strings.Split(raw, sep), nil
	}
}

// GetConfig merges defaults, the config file, FRETBOYE_* env vars and
// flags of cmd, in increasing priority. cmd may be nil.
func GetConfig(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToAnySliceHookFunc(","),
		mapstructure.StringToSliceHookFunc(","),
	)))
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, flag := range bindPFlags {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(flag, f)
			}
		}
	}

	meta := Meta{}

	if configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			var configFileNotFoundError *os.PathError
			if errors.As(err, &configFileNotFoundError) {
				meta.FileNotFound = true
			} else {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return conf, meta, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.MIDI.Channel > 15 {
		return fmt.Errorf("midi channel must be in 0..15, got %d", c.MIDI.Channel)
	}
	if c.MIDI.Velocity == 0 || c.MIDI.Velocity > 127 {
		return fmt.Errorf("midi velocity must be in 1..127, got %d", c.MIDI.Velocity)
	}
	if _, err := c.Fretboard(); err != nil {
		return err
	}
	return nil
}

// Fretboard converts c into a validated layout config.
func (c Config) Fretboard() (*fretboard.Config, error) {
	fc := fretboard.DefaultConfig()
	fc.Tuning = make([]note.NoteModifier, 0, len(c.Tuning))
	for _, name := range c.Tuning {
		n, err := note.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: tuning: %v", fretboard.ErrInvalidConfig, err)
		}
		fc.Tuning = append(fc.Tuning, n)
	}
	fc.Octaves = c.Octaves
	fc.ScreenWidth = float64(c.Window.Width)
	fc.ScreenHeight = float64(c.Window.Height)
	fc.BarWidth = c.Bar.Width
	fc.BarHeight = c.Bar.Height
	fc.EdgeGap = c.Bar.EdgeGap
	fc.MarkerOffset = c.Bar.MarkerOffset
	fc.MarkerRadius = c.Bar.MarkerRadius
	fc.NoteTextSize = c.Font.NoteSize
	fc.FretNumberSize = c.Font.FretSize
	if err := fc.Validate(); err != nil {
		return nil, err
	}
	return &fc, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/minikomi/fretboye/internal/config"
	"github.com/minikomi/fretboye/internal/fretboard"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "0.0.0"

func notesCommand() *cobra.Command {
	var notesConfigFile string
	var notesCmd = &cobra.Command{
		Use:   "notes",
		Short: "Print the note table",
		Long:  `Print the note on every fret and string without opening a window`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, _, err := config.GetConfig(nil, notesConfigFile)
			if err != nil {
				fmt.Printf("error getting config: %v\n", err)
				os.Exit(1)
			}
			fc, err := cfg.Fretboard()
			if err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
			board, err := fretboard.New(fc)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
			if err := board.WriteTable(os.Stdout); err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
		},
	}
	notesCmd.Flags().StringVarP(&notesConfigFile, "config", "c", "", "path to config file")
	return notesCmd
}

func portsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ports",
		Aliases: []string{"list"},
		Short:   "List MIDI ports",
		Long:    `List MIDI in and out ports, use the out port number with --midi.port`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := ports(); err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

func checkConfigCommand() *cobra.Command {
	var checkConfigFile string
	var checkConfigCmd = &cobra.Command{
		Use:   "checkconfig",
		Short: "Check configuration file",
		Long:  `Check fretboye configuration file`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, meta, err := config.GetConfig(nil, checkConfigFile)
			if err != nil {
				fmt.Printf("error getting config: %v\n", err)
				os.Exit(1)
			}
			if meta.FileNotFound {
				fmt.Println("config file not found")
				os.Exit(1)
			}
			if err := cfg.Validate(); err != nil {
				fmt.Printf("error validating config: %s\n", err)
				os.Exit(1)
			}
		},
	}
	checkConfigCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "config.json", "path to config file to check")
	return checkConfigCmd
}

func defaultConfigCommand() *cobra.Command {
	var defaultConfigFile string
	var defaultConfigCmd = &cobra.Command{
		Use:   "defaultconfig",
		Short: "Generate configuration file with defaults",
		Long:  `Generate fretboye configuration file with defaults, format is chosen by extension`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := writeDefaultConfig(defaultConfigFile); err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
		},
	}
	defaultConfigCmd.Flags().StringVarP(&defaultConfigFile, "config", "c", "config.json", "path to default config file to generate")
	return defaultConfigCmd
}

func writeDefaultConfig(configFile string) error {
	if _, err := os.Stat(configFile); err == nil {
		return errors.New("target file already exists")
	} else if !os.IsNotExist(err) {
		return err
	}
	conf, _, err := config.GetConfig(nil, "")
	if err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	b, err := conf.Marshal(strings.TrimPrefix(filepath.Ext(configFile), "."))
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, b, 0644)
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "fretboye version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fretboye v%s (Go version: %s)\n", Version, runtime.Version())
		},
	}
}

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minikomi/fretboye/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	require.Equal(t, zerolog.Disabled, ParseLevel("none"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestSetupFile(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	defer func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	}()

	path := filepath.Join(t.TempDir(), "fretboye.log")
	closeFn, err := Setup(config.Log{Level: "warn", File: path})
	require.NoError(t, err)

	require.False(t, Enabled(zerolog.InfoLevel))
	require.True(t, Enabled(zerolog.ErrorLevel))

	log.Info().Str("note", "E").Msg("note tapped")
	log.Warn().Str("note", "F#").Msg("note tapped")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), `"note":"E"`)
	require.Contains(t, string(data), `"note":"F#"`)
}

func TestSetupBadFile(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prevLevel)

	_, err := Setup(config.Log{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalLoadsBack(t *testing.T) {
	defaults, _ := getConfig(t, "")
	for _, ext := range []string{"json", "toml", "yaml"} {
		t.Run(ext, func(t *testing.T) {
			b, err := defaults.Marshal(ext)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "config."+ext)
			require.NoError(t, os.WriteFile(path, b, 0644))

			conf, meta := getConfig(t, path)
			require.False(t, meta.FileNotFound)
			require.Equal(t, defaults, conf)
		})
	}
}

func TestMarshalUnsupported(t *testing.T) {
	defaults, _ := getConfig(t, "")
	_, err := defaults.Marshal("ini")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

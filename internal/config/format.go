package config

import (
	"encoding/json"
	"errors"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("config format must be one of: json, toml, yaml, yml")

// Marshal encodes c in the format named by a file extension without the dot.
func (c Config) Marshal(ext string) ([]byte, error) {
	switch ext {
	case "json":
		return json.MarshalIndent(c, "", "  ")
	case "toml":
		return toml.Marshal(c)
	case "yaml", "yml":
		return yaml.Marshal(c)
	}
	return nil, ErrUnsupportedFormat
}

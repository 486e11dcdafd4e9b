package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadFile reads settings from a TOML file into cfg. Fields absent from the
// file keep their current values, so flags can pre-populate defaults.
func LoadFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("toml.DecodeFile(%s): %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	return nil
}

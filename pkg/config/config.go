// Package config holds the server settings and the injectable dependencies
// used to swap out sockets and clocks in tests.
package config

import "fmt"

// Config holds the settings of the datagram server.
type Config struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	CertFile string `toml:"cert_file"`
	KeyFile  string `toml:"key_file"`
	LogFile  string `toml:"log_file"`
	Verbose  bool   `toml:"verbose"`
}

// Validate ...
func (c *Config) Validate() []error {
	var errors []error

	if err := validatePort(c.Port); err != nil {
		errors = append(errors, fmt.Errorf("'--port': %s", err))
	}

	if (c.CertFile == "") != (c.KeyFile == "") {
		errors = append(errors, fmt.Errorf("'--cert' and '--key' must be given together"))
	}

	return errors
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%d not in [1, 65535]", port)
	}

	return nil
}

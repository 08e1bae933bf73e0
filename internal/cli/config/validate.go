package config

import (
	"fmt"

	"github.com/leapstack-labs/golox/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !output.Mode(c.Output).Valid() {
		return fmt.Errorf("unknown output mode %q (valid: auto, text, table, json)", c.Output)
	}
	return nil
}

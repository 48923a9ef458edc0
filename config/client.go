package config

import (
	"fmt"

	"github.com/restkit/restkit/logger"
	"github.com/restkit/restkit/util"
)

// ClientConfig contains the configuration fields every restkit client needs.
// Projects extend this by embedding it in their own config structs:
//
//	type AppConfig struct {
//	    config.ClientConfig `yaml:",inline" mapstructure:",squash"`
//	    Store store.Config  `yaml:"store" mapstructure:"store"`
//	}
type ClientConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the base configuration.
// Embedding structs override this and call it first.
func (c *ClientConfig) ApplyDefaults() {
	c.Environment = util.Coalesce(c.Environment, "development")
	c.Logging.ApplyDefaults()
}

// Validate validates the base configuration fields.
// Embedding structs override this and call it first.
func (c *ClientConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config: name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	for _, v := range validEnvs {
		if c.Environment == v {
			return c.Logging.Validate()
		}
	}
	return fmt.Errorf("config: environment must be one of %v (got: %s)", validEnvs, c.Environment)
}

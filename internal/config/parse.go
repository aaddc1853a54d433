package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from environ instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

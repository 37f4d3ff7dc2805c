package config

import _ "embed"

// DefaultConfigYAML is the built-in configuration, overridden by external files and env.
//
//go:embed config.default.yaml
var DefaultConfigYAML []byte

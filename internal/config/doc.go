// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file and COORD_-prefixed environment
// variables. It provides type-safe access to the settings needed by the
// stores, the logger and the auth layer.
package config

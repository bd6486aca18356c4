// Package config loads the YAML configuration file for the assistant.
package config

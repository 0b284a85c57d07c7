// Package config loads, normalizes, and validates atmosprobe configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the ATMOSPROBE_FFPROBE environment
// override. Unknown keys are rejected so typos surface at load time instead of
// silently falling back to defaults.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

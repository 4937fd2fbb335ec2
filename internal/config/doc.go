// Package config holds the converter's YAML settings and the layered loader
// that assembles them from defaults, user and project files, an explicit file
// and command-line overrides.
package config

// Package config handles configuration management for unconflict.
// Values are layered from embedded defaults, the user's XDG config file, a
// project .unconflict.toml, an explicit --config file and UNCONFLICT_*
// environment variables, in that order.
package config

// Package config loads classorg configuration: the requested group list,
// the preset table, and the sort options the CLI feeds to the organizer.
//
// Configuration layers, later layers overriding earlier ones:
//
//  1. embedded defaults (a useful preset set ships with the binary)
//  2. the user config at $XDG_CONFIG_HOME/classorg/config.toml
//  3. a project-local .classorg.toml or classorg.toml
//  4. CLASSORG_* environment variables
//
// An explicit --config path replaces layers 2 and 3.
package config

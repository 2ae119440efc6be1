// Package config loads and validates the application's configuration.
//
// Configuration lives in a single TOML file with typed sections; a
// missing file is not an error and yields the defaults. Themes are
// separate YAML files resolved into ready-to-use paint styles. The
// Watcher reloads the TOML file when it changes on disk, debounced so
// editors that write in several steps trigger one reload.
package config

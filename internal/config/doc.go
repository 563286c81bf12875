// Package config loads and validates bookshelf configuration.
//
// Configuration is read from a TOML file (explicit path, then
// ~/.config/bookshelf/config.toml, then ./bookshelf.toml) layered over
// Default(). Environment variables override the file for the library
// location, storage backend and log level. Paths beginning with "~" are
// expanded and made absolute during normalization so downstream packages can
// use them directly.
package config

// Package toml provides a TOML parser implementation for the config package,
// backed by github.com/BurntSushi/toml. Integers decode as int64 and tables as
// map[string]any.
package toml

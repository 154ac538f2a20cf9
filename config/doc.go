// Package config defines the contract between configuration sources and the morpher.
//
// The package uses an interface-based design with four extension points:
//   - Parser: decodes raw data (YAML, JSON, TOML) into a tree.Tree
//   - DataFetcher: retrieves raw config data (file, memory, etc.)
//   - Defaulter: supplies default values for struct targets
//   - Validator: validates a morphed struct after construction
//
// Parsers live under config/parser and fetchers under config/fetcher. The
// morpher itself never performs I/O; Load is the only place where fetched
// bytes become a tree.
//
// # Example
//
//	fetcher, err := filefetcher.NewFetcher("config.yaml")()
//	if err != nil {
//	    return err
//	}
//	cfg, err := config.Load(yamlparser.NewParser(), fetcher)
package config

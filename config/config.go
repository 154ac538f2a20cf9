package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-morph/tree"
)

// ErrNotMapping is returned by parsers when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Parser defines an interface for turning raw configuration data into a tree.
//
// Parsers only decode; navigating into the tree is done by the tree package.
type Parser interface {
	Parse(data []byte) (tree.Tree, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating morphed configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
// Struct targets implementing it get their defaults from SetDefaults.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Load fetches raw data and parses it into a tree.
func Load(parser Parser, dataSourcer DataFetcher) (tree.Tree, error) {
	data, err := dataSourcer.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	slog.Debug("configuration loaded", slog.Int("keys", len(parsed)))

	return parsed, nil
}

// Provider returns an Fx-friendly constructor that loads the tree from the injected parser and fetcher.
func Provider() func(Parser, DataFetcher) (tree.Tree, error) {
	return Load
}

package morph

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-morph/config"
	filefetcher "github.com/0xalexb/hjarta-morph/config/fetcher/file"
	jsonparser "github.com/0xalexb/hjarta-morph/config/parser/json"
	tomlparser "github.com/0xalexb/hjarta-morph/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-morph/config/parser/yaml"
)

// ErrUnsupportedFormat is returned when no parser handles a configuration format.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// ParserFor returns the parser for a format name as reported by the file fetcher.
//
//nolint:ireturn // callers only need the config.Parser contract
func ParserFor(format string) (config.Parser, error) {
	switch format {
	case filefetcher.FormatYAML:
		return yamlparser.NewParser(), nil
	case filefetcher.FormatJSON:
		return jsonparser.NewParser(), nil
	case filefetcher.FormatTOML:
		return tomlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FromSource loads a tree from fetcher through parser and returns a Morpher over it.
func FromSource(parser config.Parser, fetcher config.DataFetcher, opts ...Option) (*Morpher, error) {
	cfg, err := config.Load(parser, fetcher)
	if err != nil {
		return nil, err
	}

	return New(cfg, opts...)
}

// FromFile reads a YAML, JSON or TOML file, picking the parser from the extension.
func FromFile(path string, opts ...Option) (*Morpher, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	parser, err := ParserFor(fetcher.Format())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fetcher.Path(), err)
	}

	return FromSource(parser, fetcher, opts...)
}

// FromYAML reads a YAML file regardless of its extension.
func FromYAML(path string, opts ...Option) (*Morpher, error) {
	return fromFileWith(path, yamlparser.NewParser(), opts)
}

// FromJSON reads a JSON file regardless of its extension.
func FromJSON(path string, opts ...Option) (*Morpher, error) {
	return fromFileWith(path, jsonparser.NewParser(), opts)
}

// FromTOML reads a TOML file regardless of its extension.
func FromTOML(path string, opts ...Option) (*Morpher, error) {
	return fromFileWith(path, tomlparser.NewParser(), opts)
}

func fromFileWith(path string, parser config.Parser, opts []Option) (*Morpher, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	return FromSource(parser, fetcher, opts...)
}

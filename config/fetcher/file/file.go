package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Format names reported by Fetcher.Format.
const (
	FormatYAML    = "yaml"
	FormatJSON    = "json"
	FormatTOML    = "toml"
	FormatUnknown = ""
)

// Fetcher implements config.DataFetcher interface for file-based configuration.
// The file is read once, at construction time.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns an Fx-friendly constructor for a Fetcher reading fpath.
// The constructor fails if the file cannot be read or if the path is a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{path: cleanPath, data: data}, nil
	}
}

// Fetch returns a copy of the cached file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Format returns the configuration format implied by the file extension.
func (f *Fetcher) Format() string {
	return FormatOf(f.path)
}

// FormatOf maps a file extension to a format name, FormatUnknown when unrecognized.
func FormatOf(fpath string) string {
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

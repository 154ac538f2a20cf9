package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/0xalexb/hjarta-morph/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a TOML document. A TOML document is always a table, so the
// result is never a non-mapping root.
func (p *Parser) Parse(data []byte) (tree.Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	document := make(map[string]any)

	err := toml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return tree.Tree(document), nil
}

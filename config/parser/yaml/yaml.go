package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-morph/config"
	"github.com/0xalexb/hjarta-morph/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML document into a tree. The document root must be a mapping;
// an empty document (only comments or "---") yields an empty tree.
func (p *Parser) Parse(data []byte) (tree.Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var document any

	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if document == nil {
		return tree.Tree{}, nil
	}

	root, isMapping := tree.AsTree(document)
	if !isMapping {
		return nil, fmt.Errorf("%w: got %T", config.ErrNotMapping, document)
	}

	return root, nil
}

package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-morph/config"
	"github.com/0xalexb/hjarta-morph/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a JSON document whose root must be an object.
func (p *Parser) Parse(data []byte) (tree.Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var document any

	err := json.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	root, isMapping := tree.AsTree(document)
	if !isMapping {
		return nil, fmt.Errorf("%w: got %T", config.ErrNotMapping, document)
	}

	return root, nil
}

// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for decoding. Nested mappings come
// out as map[string]any, which is what the tree package navigates. Integer
// scalars keep the representation chosen by the decoder (int64 or uint64);
// the morpher never converts them.
//
// Usage:
//
//	parser := yaml.NewParser()
//	cfg, err := parser.Parse(data)
package yaml

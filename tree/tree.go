package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Separator delimits path segments in the string form of a Path.
const Separator = "."

// ErrPathNotFound is returned when a path does not resolve to a mapping in the tree.
var ErrPathNotFound = errors.New("path not found")

// Reasons reported by PathError.
const (
	ReasonMissingKey = "missing key"
	ReasonNotMapping = "not a mapping"
)

// Tree is a nested configuration mapping.
type Tree map[string]any

// Path identifies a location in a Tree. The empty path is the root.
type Path []string

// ParsePath splits a dot-delimited path. The empty string is the root path.
func ParsePath(path string) Path {
	if path == "" {
		return nil
	}

	return strings.Split(path, Separator)
}

// String returns the dot-delimited form of the path.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// IsRoot reports whether the path addresses the root of a tree.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// PathError describes the first segment of a path that could not be resolved.
type PathError struct {
	Path    Path
	Segment string
	Reason  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %q in %q: %s", ErrPathNotFound, e.Segment, e.Path.String(), e.Reason)
}

// Unwrap makes PathError match ErrPathNotFound.
func (e *PathError) Unwrap() error {
	return ErrPathNotFound
}

// Keys returns the keys of the tree in no particular order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}

	return keys
}

// Navigate walks the path from the root of t and returns the mapping found there.
// Every value along the way, including the last one, must be a mapping.
func Navigate(t Tree, path Path) (Tree, error) {
	current := t

	for _, segment := range path {
		value, found := current[segment]
		if !found {
			return nil, &PathError{Path: path, Segment: segment, Reason: ReasonMissingKey}
		}

		next, isMapping := AsTree(value)
		if !isMapping {
			return nil, &PathError{Path: path, Segment: segment, Reason: ReasonNotMapping}
		}

		current = next
	}

	return current, nil
}

// AsTree reports whether value is a mapping and returns it as a Tree.
// Parsers hand out either Tree or map[string]any for nested mappings.
func AsTree(value any) (Tree, bool) {
	switch typed := value.(type) {
	case Tree:
		return typed, typed != nil
	case map[string]any:
		return Tree(typed), typed != nil
	default:
		return nil, false
	}
}

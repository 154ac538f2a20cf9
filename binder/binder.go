// Package binder matches configuration keys to signature parameters.
package binder

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-morph/signature"
	"github.com/0xalexb/hjarta-morph/tree"
)

var (
	// ErrMissingRequiredKey is returned when a required parameter has no configuration key.
	ErrMissingRequiredKey = errors.New("missing required key")
	// ErrExtraKeysNotAllowed is returned when configuration keys are left unconsumed and extra keys are disallowed.
	ErrExtraKeysNotAllowed = errors.New("extra keys not allowed")
)

// Result is the outcome of binding one sub-tree against one signature.
// Consumed and Leftover are sorted and together hold every key of the sub-tree.
type Result struct {
	Bound    map[string]any
	Consumed []string
	Leftover []string
}

// MissingKeyError names the required parameter that configuration did not provide.
type MissingKeyError struct {
	Param  string
	Target string
	Path   tree.Path
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: %q for %s at %s", ErrMissingRequiredKey, e.Param, e.Target, describePath(e.Path))
}

// Unwrap makes MissingKeyError match ErrMissingRequiredKey.
func (e *MissingKeyError) Unwrap() error {
	return ErrMissingRequiredKey
}

// ExtraKeysError lists configuration keys the signature does not accept.
type ExtraKeysError struct {
	Keys   []string
	Target string
	Path   tree.Path
}

func (e *ExtraKeysError) Error() string {
	return fmt.Sprintf("%s: [%s] unused by %s at %s",
		ErrExtraKeysNotAllowed, strings.Join(e.Keys, ", "), e.Target, describePath(e.Path))
}

// Unwrap makes ExtraKeysError match ErrExtraKeysNotAllowed.
func (e *ExtraKeysError) Unwrap() error {
	return ErrExtraKeysNotAllowed
}

// Bind takes the value of every parameter whose name is a key of sub, verbatim.
// path is the location sub was taken from and only feeds error messages.
// Optional parameters absent from sub are left out of Bound. Binding fails as a
// whole on the first missing required parameter, or on leftover keys when
// allowExtra is false.
func Bind(sub tree.Tree, sig signature.Signature, path tree.Path, allowExtra bool) (Result, error) {
	bound := make(map[string]any, len(sig.Params))

	for _, param := range sig.Params {
		value, found := sub[param.Name]
		if !found {
			if param.Required {
				return Result{}, &MissingKeyError{Param: param.Name, Target: sig.Name, Path: path}
			}

			continue
		}

		bound[param.Name] = value
	}

	consumed := make([]string, 0, len(bound))
	leftover := make([]string, 0, len(sub)-len(bound))

	for key := range sub {
		if _, used := bound[key]; used {
			consumed = append(consumed, key)
		} else {
			leftover = append(leftover, key)
		}
	}

	slices.Sort(consumed)
	slices.Sort(leftover)

	if !allowExtra && len(leftover) > 0 {
		return Result{}, &ExtraKeysError{Keys: leftover, Target: sig.Name, Path: path}
	}

	return Result{Bound: bound, Consumed: consumed, Leftover: leftover}, nil
}

func describePath(path tree.Path) string {
	if path.IsRoot() {
		return "root"
	}

	return fmt.Sprintf("%q", path.String())
}

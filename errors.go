package morph

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-morph/adapter"
	"github.com/0xalexb/hjarta-morph/binder"
	"github.com/0xalexb/hjarta-morph/signature"
	"github.com/0xalexb/hjarta-morph/tree"
)

// Failures of the morph pipeline, matched with errors.Is.
var (
	ErrPathNotFound        = tree.ErrPathNotFound
	ErrUnintrospectable    = signature.ErrUnintrospectable
	ErrMissingRequiredKey  = binder.ErrMissingRequiredKey
	ErrExtraKeysNotAllowed = binder.ErrExtraKeysNotAllowed
	ErrStructuredBuild     = adapter.ErrStructuredBuild
	ErrInvalidReturnType   = adapter.ErrInvalidReturnType
)

var (
	// ErrArityMismatch is returned when per-target paths and targets differ in number.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrNilTree is returned by New for a nil configuration tree.
	ErrNilTree = errors.New("configuration tree is nil")
	// ErrNoTargets is returned by MorphAll for an empty target list.
	ErrNoTargets = errors.New("no targets")
	// ErrUnexpectedInstance is returned by To and Into when the built instance is not of the requested type.
	ErrUnexpectedInstance = errors.New("unexpected instance type")
)

// ArityMismatchError reports the number of targets and of per-target paths.
type ArityMismatchError struct {
	Targets int
	Paths   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: %d targets, %d paths", ErrArityMismatch, e.Targets, e.Paths)
}

// Unwrap makes ArityMismatchError match ErrArityMismatch.
func (e *ArityMismatchError) Unwrap() error {
	return ErrArityMismatch
}

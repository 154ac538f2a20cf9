// Package adapter turns a binding result into the shape the caller asked for:
// a mapping, or an instance built from the target's signature.
package adapter

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"

	"github.com/mohae/deepcopy"

	"github.com/0xalexb/hjarta-morph/binder"
	"github.com/0xalexb/hjarta-morph/signature"
)

var (
	// ErrStructuredBuild is returned when constructing a structured instance fails.
	ErrStructuredBuild = errors.New("structured build failed")
	// ErrInvalidReturnType is returned for return types other than Mapping and Structured.
	ErrInvalidReturnType = errors.New("invalid return type")
)

// ReturnType selects the shape of an Outcome.
type ReturnType int

const (
	// Mapping returns parameter values keyed by name.
	Mapping ReturnType = iota
	// Structured returns an instance built from the target signature.
	Structured
)

func (r ReturnType) String() string {
	switch r {
	case Mapping:
		return "mapping"
	case Structured:
		return "structured"
	default:
		return fmt.Sprintf("ReturnType(%d)", int(r))
	}
}

// ParseReturnType accepts "mapping" or "dict", and "structured" or "dataclass", in any case.
func ParseReturnType(name string) (ReturnType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mapping", "dict":
		return Mapping, nil
	case "structured", "dataclass":
		return Structured, nil
	default:
		return Mapping, fmt.Errorf("%w: %q, choose from mapping, structured", ErrInvalidReturnType, name)
	}
}

// Outcome is either a mapping or a structured instance.
type Outcome struct {
	kind     ReturnType
	mapping  map[string]any
	instance any
}

// MappingOutcome wraps a mapping.
func MappingOutcome(mapping map[string]any) Outcome {
	return Outcome{kind: Mapping, mapping: mapping, instance: nil}
}

// StructuredOutcome wraps a structured instance.
func StructuredOutcome(instance any) Outcome {
	return Outcome{kind: Structured, mapping: nil, instance: instance}
}

// Kind reports which shape the outcome holds.
func (o Outcome) Kind() ReturnType {
	return o.kind
}

// Mapping returns the mapping and true for mapping outcomes.
func (o Outcome) Mapping() (map[string]any, bool) {
	return o.mapping, o.kind == Mapping
}

// Instance returns the structured instance, nil for mapping outcomes.
func (o Outcome) Instance() any {
	return o.instance
}

// BuildError wraps the failure of a structured construction.
type BuildError struct {
	Target string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStructuredBuild, e.Target, e.Err)
}

// Unwrap exposes ErrStructuredBuild and the construction failure.
func (e *BuildError) Unwrap() []error {
	return []error{ErrStructuredBuild, e.Err}
}

// Adapt shapes a binding result. configKeysOnly applies to Mapping only; Structured
// always builds from the mapping with defaults filled in.
func Adapt(result binder.Result, sig signature.Signature, returnType ReturnType, configKeysOnly bool) (Outcome, error) {
	switch returnType {
	case Mapping:
		if configKeysOnly {
			return MappingOutcome(maps.Clone(result.Bound)), nil
		}

		return MappingOutcome(WithDefaults(result.Bound, sig)), nil
	case Structured:
		instance, err := sig.Build(WithDefaults(result.Bound, sig))
		if err != nil {
			return Outcome{}, &BuildError{Target: sig.Name, Err: err}
		}

		return StructuredOutcome(instance), nil
	default:
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidReturnType, returnType)
	}
}

// WithDefaults returns a copy of bound extended with the default of every optional
// parameter bound does not hold. Values already in bound always win.
func WithDefaults(bound map[string]any, sig signature.Signature) map[string]any {
	extended := make(map[string]any, len(sig.Params))
	maps.Copy(extended, bound)

	for _, param := range sig.Params {
		if param.Required {
			continue
		}

		if _, present := extended[param.Name]; present {
			continue
		}

		extended[param.Name] = copyDefault(param.Default)
	}

	return extended
}

// copyDefault deep copies container defaults so outcomes never share them with
// the target's prototype.
func copyDefault(value any) any {
	if value == nil {
		return nil
	}

	switch reflect.TypeOf(value).Kind() { //nolint:exhaustive // only containers are copied
	case reflect.Map, reflect.Slice:
		return deepcopy.Copy(value)
	default:
		return value
	}
}

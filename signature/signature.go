package signature

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnintrospectable is returned when a target exposes no usable parameter list.
	ErrUnintrospectable = errors.New("target is not introspectable")
	// ErrNotConstructible is returned by Build when the signature has no owning type or function.
	ErrNotConstructible = errors.New("signature has no constructor")
	// ErrMissingValue is returned by Build when a required parameter has no value.
	ErrMissingValue = errors.New("missing value for required parameter")
)

// Parameter describes one named input of a target.
type Parameter struct {
	Name     string
	Required bool
	// Default is only meaningful for optional parameters.
	Default any
	// Type is the Go type the value ends up in, nil when unknown.
	Type reflect.Type
}

// BuildFunc constructs an instance from parameter values keyed by name.
type BuildFunc func(values map[string]any) (any, error)

// Signature is the ordered parameter list of a target plus the means to construct it.
type Signature struct {
	Name   string
	Params []Parameter
	build  BuildFunc
}

// Describer is implemented by targets that describe their own signature.
type Describer interface {
	Describe() (Signature, error)
}

// New assembles a signature for a Describer implementation. build may be nil
// when the target can only be morphed into mappings.
func New(name string, params []Parameter, build BuildFunc) Signature {
	return Signature{Name: name, Params: params, build: build}
}

// Lookup returns the parameter with the given name.
func (s Signature) Lookup(name string) (Parameter, bool) {
	for _, param := range s.Params {
		if param.Name == name {
			return param, true
		}
	}

	return Parameter{}, false
}

// Names returns the parameter names in declaration order.
func (s Signature) Names() []string {
	names := make([]string, len(s.Params))
	for i, param := range s.Params {
		names[i] = param.Name
	}

	return names
}

// Build constructs the owning type from values. Construction panics are reported as errors.
func (s Signature) Build(values map[string]any) (instance any, err error) {
	if s.build == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConstructible, s.Name)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			instance = nil
			err = fmt.Errorf("constructing %s panicked: %v", s.Name, recovered)
		}
	}()

	return s.build(values)
}

// UnintrospectableError reports why a target has no usable signature.
type UnintrospectableError struct {
	Target string
	Reason string
	Err    error
}

func (e *UnintrospectableError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrUnintrospectable, e.Target, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrUnintrospectable and the underlying cause, if any.
func (e *UnintrospectableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnintrospectable}
	}

	return []error{ErrUnintrospectable, e.Err}
}

func unintrospectable(target any, reason string) error {
	return &UnintrospectableError{Target: fmt.Sprintf("%T", target), Reason: reason, Err: nil}
}

// Introspect returns the signature of target. See the package documentation for
// the accepted target shapes.
func Introspect(target any) (Signature, error) {
	switch typed := target.(type) {
	case nil:
		return Signature{}, unintrospectable(target, "nil target")
	case Signature:
		return typed, nil
	case *Signature:
		if typed == nil {
			return Signature{}, unintrospectable(target, "nil signature")
		}

		return *typed, nil
	case Describer:
		sig, err := typed.Describe()
		if err != nil {
			var unErr *UnintrospectableError
			if errors.As(err, &unErr) {
				return Signature{}, err
			}

			return Signature{}, &UnintrospectableError{Target: fmt.Sprintf("%T", target), Reason: "describe failed", Err: err}
		}

		return sig, nil
	case reflect.Type:
		return introspectType(typed)
	}

	value := reflect.ValueOf(target)

	switch value.Kind() { //nolint:exhaustive // every other kind is unintrospectable
	case reflect.Struct:
		return fromStruct(value.Type(), value, false)
	case reflect.Pointer:
		if value.Type().Elem().Kind() != reflect.Struct {
			return Signature{}, unintrospectable(target, "pointer to non-struct")
		}

		if value.IsNil() {
			return fromStruct(value.Type().Elem(), reflect.Value{}, true)
		}

		return fromStruct(value.Type().Elem(), value.Elem(), true)
	case reflect.Func:
		return Signature{}, unintrospectable(target, "function parameters carry no names, register it with signature.Func")
	default:
		return Signature{}, unintrospectable(target, "no parameter list")
	}
}

// Of returns the signature of the struct type T, or of the struct T points to.
func Of[T any]() (Signature, error) {
	return introspectType(reflect.TypeFor[T]())
}

func introspectType(typ reflect.Type) (Signature, error) {
	switch {
	case typ == nil:
		return Signature{}, unintrospectable(typ, "nil type")
	case typ.Kind() == reflect.Struct:
		return fromStruct(typ, reflect.Value{}, false)
	case typ.Kind() == reflect.Pointer && typ.Elem().Kind() == reflect.Struct:
		return fromStruct(typ.Elem(), reflect.Value{}, true)
	default:
		return Signature{}, &UnintrospectableError{Target: typ.String(), Reason: "type is not a struct", Err: nil}
	}
}

package signature

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

var errorType = reflect.TypeFor[error]() //nolint:gochecknoglobals // type handle

// Param declares one named parameter of a function target.
type Param struct {
	name       string
	required   bool
	defaultVal any
}

// Required declares a parameter that configuration must provide.
func Required(name string) Param {
	return Param{name: name, required: true, defaultVal: nil}
}

// Optional declares a parameter with a default. A nil default means the zero value of the parameter type.
func Optional(name string, defaultVal any) Param {
	return Param{name: name, required: false, defaultVal: defaultVal}
}

// FuncTarget is a function or bound method whose parameter names were declared explicitly.
// Building a FuncTarget calls the function; its first result is the instance.
type FuncTarget struct {
	name   string
	fn     reflect.Value
	params []Param
	err    error
}

// Func registers fn with one Param per non-variadic parameter, in declaration order.
// Variadic tails are never bound and are called empty.
func Func(fn any, params ...Param) *FuncTarget {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func || value.IsNil() {
		return &FuncTarget{name: fmt.Sprintf("%T", fn), params: params, err: errors.New("not a function")}
	}

	return &FuncTarget{name: funcName(value), fn: value, params: params, err: nil}
}

// Method registers the method called name on receiver. The receiver is bound and never a parameter.
func Method(receiver any, name string, params ...Param) *FuncTarget {
	target := fmt.Sprintf("%T.%s", receiver, name)

	if receiver == nil {
		return &FuncTarget{name: target, params: params, err: errors.New("nil receiver")}
	}

	method := reflect.ValueOf(receiver).MethodByName(name)
	if !method.IsValid() {
		return &FuncTarget{name: target, params: params, err: fmt.Errorf("no exported method %q", name)}
	}

	return &FuncTarget{name: target, fn: method, params: params, err: nil}
}

// Describe implements Describer.
func (f *FuncTarget) Describe() (Signature, error) {
	if f.err != nil {
		return Signature{}, &UnintrospectableError{Target: f.name, Reason: "invalid registration", Err: f.err}
	}

	fnType := f.fn.Type()

	fixed := fnType.NumIn()
	if fnType.IsVariadic() {
		fixed--
	}

	if len(f.params) != fixed {
		return Signature{}, &UnintrospectableError{
			Target: f.name,
			Reason: fmt.Sprintf("%d parameters declared, function takes %d", len(f.params), fixed),
			Err:    nil,
		}
	}

	params := make([]Parameter, len(f.params))
	seen := make(map[string]struct{}, len(f.params))

	for i, declared := range f.params {
		if declared.name == "" {
			return Signature{}, &UnintrospectableError{Target: f.name, Reason: fmt.Sprintf("parameter %d has no name", i), Err: nil}
		}

		if _, duplicate := seen[declared.name]; duplicate {
			return Signature{}, &UnintrospectableError{
				Target: f.name,
				Reason: fmt.Sprintf("parameter %q declared twice", declared.name),
				Err:    nil,
			}
		}

		seen[declared.name] = struct{}{}

		inType := fnType.In(i)
		param := Parameter{Name: declared.name, Required: declared.required, Default: nil, Type: inType}

		if !declared.required {
			slot := reflect.New(inType).Elem()

			if declared.defaultVal != nil {
				err := assign(slot, declared.defaultVal)
				if err != nil {
					return Signature{}, &UnintrospectableError{
						Target: f.name,
						Reason: fmt.Sprintf("default for %q", declared.name),
						Err:    err,
					}
				}
			}

			param.Default = slot.Interface()
		}

		params[i] = param
	}

	return Signature{Name: f.name, Params: params, build: f.call(params, fnType)}, nil
}

func (f *FuncTarget) call(params []Parameter, fnType reflect.Type) BuildFunc {
	return func(values map[string]any) (any, error) {
		args := make([]reflect.Value, len(params))

		for i, param := range params {
			value, found := values[param.Name]
			if !found {
				if param.Required {
					return nil, fmt.Errorf("%w: %q", ErrMissingValue, param.Name)
				}

				value = param.Default
			}

			arg := reflect.New(fnType.In(i)).Elem()

			err := assign(arg, value)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", param.Name, err)
			}

			args[i] = arg
		}

		return splitResults(f.fn.Call(args))
	}
}

// splitResults turns call results into an instance and an error.
// A trailing error result is the construction error; the first other result is the instance.
func splitResults(results []reflect.Value) (any, error) {
	if len(results) == 0 {
		return nil, nil
	}

	last := results[len(results)-1]
	if last.Type() == errorType {
		if !last.IsNil() {
			err, _ := last.Interface().(error)

			return nil, err
		}

		results = results[:len(results)-1]
	}

	if len(results) == 0 {
		return nil, nil
	}

	return results[0].Interface(), nil
}

func funcName(fn reflect.Value) string {
	info := runtime.FuncForPC(fn.Pointer())
	if info == nil {
		return fn.Type().String()
	}

	name := info.Name()
	if slash := strings.LastIndex(name, "/"); slash >= 0 {
		name = name[slash+1:]
	}

	return strings.TrimSuffix(name, "-fm")
}

package signature

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mohae/deepcopy"

	"github.com/0xalexb/hjarta-morph/config"
)

const tagName = "morph"

// fallbackTags are consulted, in order, when a field has no morph tag name.
var fallbackTags = []string{"yaml", "json", "toml"} //nolint:gochecknoglobals // read-only lookup order

type tagOptions struct {
	skip     bool
	optional bool
	required bool
}

func fromStruct(typ reflect.Type, given reflect.Value, pointer bool) (Signature, error) {
	prototype := reflect.New(typ).Elem()
	if given.IsValid() {
		prototype.Set(given)
	}

	if defaulter, ok := prototype.Addr().Interface().(config.Defaulter); ok {
		defaulter.SetDefaults()
	}

	var (
		params     []Parameter
		indices    []int
		containers []int
		seen       = make(map[string]struct{})
	)

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		if kind := field.Type.Kind(); kind == reflect.Map || kind == reflect.Slice {
			containers = append(containers, i)
		}

		name, opts := fieldName(field)
		if opts.skip {
			continue
		}

		if _, duplicate := seen[name]; duplicate {
			return Signature{}, &UnintrospectableError{
				Target: typ.String(),
				Reason: fmt.Sprintf("parameter %q declared twice", name),
				Err:    nil,
			}
		}

		seen[name] = struct{}{}

		fieldValue := prototype.Field(i)
		required := !opts.optional && fieldValue.IsZero()

		if opts.required {
			required = true
		}

		param := Parameter{Name: name, Required: required, Default: nil, Type: field.Type}
		if !required {
			param.Default = fieldValue.Interface()
		}

		params = append(params, param)
		indices = append(indices, i)
	}

	build := func(values map[string]any) (any, error) {
		out := reflect.New(typ).Elem()
		out.Set(prototype)
		copyContainers(out, containers)

		for i, param := range params {
			value, found := values[param.Name]
			if !found {
				if param.Required {
					return nil, fmt.Errorf("%w: %q", ErrMissingValue, param.Name)
				}

				continue
			}

			err := assign(out.Field(indices[i]), value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", param.Name, err)
			}
		}

		if pointer {
			return out.Addr().Interface(), nil
		}

		return out.Interface(), nil
	}

	return Signature{Name: typ.Name(), Params: params, build: build}, nil
}

// copyContainers replaces the exported map and slice fields of out with deep
// copies. Unexported fields stay shared with the prototype.
func copyContainers(out reflect.Value, indices []int) {
	for _, i := range indices {
		field := out.Field(i)
		if field.IsNil() {
			continue
		}

		field.Set(reflect.ValueOf(deepcopy.Copy(field.Interface())))
	}
}

func fieldName(field reflect.StructField) (string, tagOptions) {
	var opts tagOptions

	name := ""

	if tag, ok := field.Tag.Lookup(tagName); ok {
		parts := strings.Split(tag, ",")
		if parts[0] == "-" && len(parts) == 1 {
			return "", tagOptions{skip: true, optional: false, required: false}
		}

		name = parts[0]

		for _, option := range parts[1:] {
			switch strings.TrimSpace(option) {
			case "optional":
				opts.optional = true
			case "required":
				opts.required = true
			}
		}
	}

	for _, fallback := range fallbackTags {
		if name != "" {
			break
		}

		tag, ok := field.Tag.Lookup(fallback)
		if !ok {
			continue
		}

		tagged, _, _ := strings.Cut(tag, ",")
		if tagged == "-" {
			return "", tagOptions{skip: true, optional: false, required: false}
		}

		name = tagged
	}

	if name == "" {
		name = toSnake(field.Name)
	}

	return name, opts
}

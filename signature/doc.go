// Package signature describes the parameters a morph target accepts.
//
// Go keeps no parameter names at run time, so targets come in three shapes:
//
//   - Struct types (T, *T or reflect.Type). Exported fields are discovered
//     automatically, named by the `morph` tag, then the `yaml`, `json` or
//     `toml` tag, then the field name in snake_case.
//   - Functions and bound methods registered with Func or Method, which
//     declare parameter names and defaults up front.
//   - Anything implementing Describer.
//
// Struct field tags:
//
//	Host    string `morph:"host"`             // required
//	Port    int    `morph:"port,optional"`    // optional, default is the prototype value
//	Secret  string `morph:"-"`                // never bound
//	Timeout int    `yaml:"timeout,omitempty"` // name taken from the yaml tag
//
// A struct field is also optional when the prototype passed to Introspect (or
// its SetDefaults method) gives it a non-zero value. `morph:",required"`
// overrides both.
package signature

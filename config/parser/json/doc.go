// Package json provides a JSON parser implementation for the config package.
//
// Numbers decode as float64, as encoding/json does for untyped targets.
package json

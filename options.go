package morph

import (
	"log/slog"

	"github.com/0xalexb/hjarta-morph/adapter"
	"github.com/0xalexb/hjarta-morph/tree"
)

// Option configures a Morpher at construction time.
type Option func(*Morpher)

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Morpher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Options holds the settings of a single Morph or MorphAll call.
type Options struct {
	// StartFrom is applied to every target unless PerTarget is set.
	StartFrom tree.Path
	// Paths holds one path per target when PerTarget is set.
	Paths          []tree.Path
	PerTarget      bool
	AllowExtraKeys bool
	ReturnType     adapter.ReturnType
	// ConfigKeysOnly leaves defaults out of mapping outcomes.
	ConfigKeysOnly bool
}

// MorphOption defines a function type for applying call options.
type MorphOption func(*Options)

// DefaultOptions returns the settings used when no option is given: root path,
// extra keys allowed, mapping outcomes holding configuration keys only.
func DefaultOptions() Options {
	return Options{
		StartFrom:      nil,
		Paths:          nil,
		PerTarget:      false,
		AllowExtraKeys: true,
		ReturnType:     adapter.Mapping,
		ConfigKeysOnly: true,
	}
}

// StartFrom binds every target against the sub-tree at the dot-delimited path.
func StartFrom(path string) MorphOption {
	return StartFromPath(tree.ParsePath(path))
}

// StartFromPath binds every target against the sub-tree at path.
func StartFromPath(path tree.Path) MorphOption {
	return func(opts *Options) {
		opts.StartFrom = path
		opts.Paths = nil
		opts.PerTarget = false
	}
}

// StartFromEach pairs targets with dot-delimited paths by position.
func StartFromEach(paths ...string) MorphOption {
	parsed := make([]tree.Path, len(paths))
	for i, path := range paths {
		parsed[i] = tree.ParsePath(path)
	}

	return StartFromEachPath(parsed...)
}

// StartFromEachPath pairs targets with paths by position.
func StartFromEachPath(paths ...tree.Path) MorphOption {
	return func(opts *Options) {
		opts.StartFrom = nil
		opts.Paths = paths
		opts.PerTarget = true
	}
}

// AllowExtraKeys sets whether configuration keys unused by a target are ignored (true) or rejected.
func AllowExtraKeys(allow bool) MorphOption {
	return func(opts *Options) {
		opts.AllowExtraKeys = allow
	}
}

// WithReturnType selects mapping or structured outcomes.
func WithReturnType(returnType adapter.ReturnType) MorphOption {
	return func(opts *Options) {
		opts.ReturnType = returnType
	}
}

// ConfigKeysOnly sets whether mapping outcomes leave out defaults of absent optional parameters.
// It has no effect on structured outcomes.
func ConfigKeysOnly(only bool) MorphOption {
	return func(opts *Options) {
		opts.ConfigKeysOnly = only
	}
}

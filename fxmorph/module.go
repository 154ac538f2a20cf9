package fxmorph

import (
	"fmt"
	"log/slog"
	"slices"

	"go.uber.org/fx"

	morph "github.com/0xalexb/hjarta-morph"
	"github.com/0xalexb/hjarta-morph/config"
	filefetcher "github.com/0xalexb/hjarta-morph/config/fetcher/file"
	"github.com/0xalexb/hjarta-morph/tree"
)

// MorpherParams are the dependencies of NewMorpher.
type MorpherParams struct {
	fx.In

	Tree   tree.Tree
	Logger *slog.Logger `optional:"true"`
}

// NewMorpher returns an Fx constructor for a Morpher over the configuration tree in the graph.
func NewMorpher(opts ...morph.Option) func(MorpherParams) (*morph.Morpher, error) {
	return func(params MorpherParams) (*morph.Morpher, error) {
		options := slices.Clone(opts)
		if params.Logger != nil {
			options = append(options, morph.WithLogger(params.Logger))
		}

		morpher, err := morph.New(params.Tree, options...)
		if err != nil {
			return nil, fmt.Errorf("creating morpher: %w", err)
		}

		return morpher, nil
	}
}

// Module loads the configuration tree from the config.Parser and config.DataFetcher
// in the graph and provides it along with *morph.Morpher.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(opts ...morph.Option) fx.Option {
	return fx.Module("morph",
		fx.Provide(
			config.Provider(),
			NewMorpher(opts...),
		),
	)
}

// FileModule provides the parser and fetcher for a YAML, JSON or TOML file along with Module.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func FileModule(path string, opts ...morph.Option) fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(path),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(func() (config.Parser, error) {
			return morph.ParserFor(filefetcher.FormatOf(path))
		}),
		Module(opts...),
	)
}

// Provide returns an Fx constructor morphing the configuration into T, a struct or pointer to one.
// When T implements config.Validator, the morphed value is validated before it is handed out.
func Provide[T any](opts ...morph.MorphOption) func(*morph.Morpher) (T, error) {
	return func(morpher *morph.Morpher) (T, error) {
		var zero T

		value, err := morph.To[T](morpher, opts...)
		if err != nil {
			return zero, fmt.Errorf("morphing %T: %w", zero, err)
		}

		if validatable, isValidatable := any(value).(config.Validator); isValidatable {
			err := validatable.Validate()
			if err != nil {
				return zero, fmt.Errorf("validating error: %w", err)
			}
		}

		return value, nil
	}
}

package morph

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/0xalexb/hjarta-morph/adapter"
	"github.com/0xalexb/hjarta-morph/binder"
	"github.com/0xalexb/hjarta-morph/signature"
	"github.com/0xalexb/hjarta-morph/tree"
)

// Outcome is the result of morphing one target.
type Outcome = adapter.Outcome

// Return types accepted by WithReturnType.
const (
	Mapping    = adapter.Mapping
	Structured = adapter.Structured
)

// Morpher morphs one configuration tree into targets. It holds no state besides
// the tree and is safe for concurrent use as long as the tree is not modified.
type Morpher struct {
	tree   tree.Tree
	logger *slog.Logger
}

// New creates a Morpher over an already parsed configuration tree.
func New(cfg tree.Tree, opts ...Option) (*Morpher, error) {
	if cfg == nil {
		return nil, ErrNilTree
	}

	morpher := &Morpher{tree: cfg, logger: slog.Default()}

	for _, apply := range opts {
		apply(morpher)
	}

	return morpher, nil
}

// Tree returns the configuration tree. Callers must not modify it.
func (m *Morpher) Tree() tree.Tree {
	return m.tree
}

// Morph morphs a single target.
func (m *Morpher) Morph(target any, opts ...MorphOption) (Outcome, error) {
	outcomes, err := m.run([]any{target}, opts, false)
	if err != nil {
		return Outcome{}, err
	}

	return outcomes[0], nil
}

// MorphAll morphs every target and returns the outcomes in target order.
// Any failure aborts the whole batch.
func (m *Morpher) MorphAll(targets []any, opts ...MorphOption) ([]Outcome, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	return m.run(targets, opts, true)
}

func (m *Morpher) run(targets []any, opts []MorphOption, batch bool) ([]Outcome, error) {
	options := DefaultOptions()
	for _, apply := range opts {
		apply(&options)
	}

	paths, err := normalizePaths(len(targets), options)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(targets))

	for i, target := range targets {
		outcome, err := m.morphOne(target, paths[i], options)
		if err != nil {
			if batch {
				return nil, fmt.Errorf("target %d: %w", i, err)
			}

			return nil, err
		}

		outcomes[i] = outcome
	}

	return outcomes, nil
}

// normalizePaths returns exactly one path per target.
func normalizePaths(targets int, options Options) ([]tree.Path, error) {
	if options.PerTarget {
		if len(options.Paths) != targets {
			return nil, &ArityMismatchError{Targets: targets, Paths: len(options.Paths)}
		}

		return options.Paths, nil
	}

	paths := make([]tree.Path, targets)
	for i := range paths {
		paths[i] = options.StartFrom
	}

	return paths, nil
}

func (m *Morpher) morphOne(target any, path tree.Path, options Options) (Outcome, error) {
	sub, err := tree.Navigate(m.tree, path)
	if err != nil {
		return Outcome{}, err
	}

	sig, err := signature.Introspect(target)
	if err != nil {
		return Outcome{}, err
	}

	result, err := binder.Bind(sub, sig, path, options.AllowExtraKeys)
	if err != nil {
		return Outcome{}, err
	}

	if len(result.Leftover) > 0 {
		m.logger.Debug("ignoring extra keys",
			slog.String("target", sig.Name),
			slog.String("path", path.String()),
			slog.Any("keys", result.Leftover),
		)
	}

	outcome, err := adapter.Adapt(result, sig, options.ReturnType, options.ConfigKeysOnly)
	if err != nil {
		return Outcome{}, err
	}

	m.logger.Debug("target morphed",
		slog.String("target", sig.Name),
		slog.String("path", path.String()),
		slog.Int("consumed", len(result.Consumed)),
		slog.String("return_type", options.ReturnType.String()),
	)

	return outcome, nil
}

// To morphs the configuration into a new T, which must be a struct or a pointer to one.
func To[T any](m *Morpher, opts ...MorphOption) (T, error) {
	return morphTo[T](m, reflect.TypeFor[T](), opts)
}

// Into morphs the configuration into a copy of prototype. Non-zero prototype
// fields are defaults for keys the configuration leaves out.
func Into[T any](m *Morpher, prototype T, opts ...MorphOption) (T, error) {
	return morphTo[T](m, prototype, opts)
}

func morphTo[T any](m *Morpher, target any, opts []MorphOption) (T, error) {
	var zero T

	outcome, err := m.Morph(target, append(slices.Clone(opts), WithReturnType(Structured))...)
	if err != nil {
		return zero, err
	}

	instance, ok := outcome.Instance().(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedInstance, outcome.Instance(), zero)
	}

	return instance, nil
}

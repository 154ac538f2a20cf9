// Package morph maps a nested configuration tree onto the parameters of a target.
//
// A target is a struct type, a constructor or bound method registered with
// signature.Func or signature.Method, or anything implementing
// signature.Describer. For each target the morpher navigates to a sub-tree,
// matches its keys to parameter names, and returns either the matched values
// as a mapping or an instance built from them.
//
//	m, err := morph.New(tree.Tree{"db": map[string]any{"host": "x", "port": 1}})
//	if err != nil {
//	    return err
//	}
//	outcome, err := m.Morph(DBConfig{}, morph.StartFrom("db"))
//	values, _ := outcome.Mapping() // map[host:x port:1]
//
// Batches morph several targets in one call, each against the same path or
// against its own path, and return the outcomes in target order:
//
//	outcomes, err := m.MorphAll([]any{ClientConfig{}, CompletionConfig{}},
//	    morph.StartFromEach("openai", "openai.chat.completions"))
//
// Every failure aborts the whole call. Errors match the sentinels re-exported
// here (ErrPathNotFound, ErrMissingRequiredKey, ...) through errors.Is.
package morph

// Package tree holds the in-memory configuration tree and resolves paths into it.
//
// A Tree is the already-parsed form of a configuration document: string keys
// mapping to scalars, sequences or nested mappings. Paths are dot-delimited:
//
//	"db"                   -> tree["db"]
//	"openai.chat.options"  -> tree["openai"]["chat"]["options"]
//	""                     -> the tree itself
//
// Navigation is read-only. Use errors.Is(err, tree.ErrPathNotFound) to detect
// unresolved paths and errors.As with *tree.PathError for the failing segment.
package tree

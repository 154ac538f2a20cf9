// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached; Fetch returns copies of
// the cached bytes. FormatOf reports which parser a path calls for, based on
// its extension (.yaml/.yml, .json, .toml).
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.toml")()
//	if err != nil {
//	    // file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
package file

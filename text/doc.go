// Package text provides the text-level primitives the outline engine
// relies on: a search normalizer that reduces strings to comparable keys,
// and a script classifier that decides how heading and body lengths are
// counted for a given language.
package text

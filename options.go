package titulus

import "github.com/tsawler/titulus/outline"

// langSamplePages is how many leading pages feed language detection.
const langSamplePages = 3

// ExtractOptions holds configuration for outline inference.
type ExtractOptions struct {
	// language forces a language code; empty means auto-detect from the
	// first pages of the document.
	language string

	// skipBookmarks ignores a native bookmark outline and always runs
	// the typographic heuristics.
	skipBookmarks bool

	// config tunes the inference engine.
	config outline.Config
}

// defaultOptions returns the default inference options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		language:      "",
		skipBookmarks: false,
		config:        outline.DefaultConfig(),
	}
}

package titulus

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/tsawler/titulus/lang"
	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/outline"
	"github.com/tsawler/titulus/reader"
)

// Result is the inferred outline of one document.
type Result struct {
	Title   string               `json:"title"`
	Outline []model.OutlineEntry `json:"outline"`
}

// Extractor provides a fluent interface for inferring document outlines.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	filename string
	options  ExtractOptions
}

// clone creates a copy of the Extractor. This ensures immutability; each
// chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		options:  e.options,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Language forces the language code used to pick the token-counting
// regime, bypassing auto-detection.
//
// Example:
//
//	result, err := titulus.Open("doc.pdf").Language("ja").Outline()
func (e *Extractor) Language(code string) *Extractor {
	newExt := e.clone()
	newExt.options.language = code
	return newExt
}

// SkipBookmarks ignores any native bookmark outline embedded in the
// document, forcing the typographic heuristics.
func (e *Extractor) SkipBookmarks() *Extractor {
	newExt := e.clone()
	newExt.options.skipBookmarks = true
	return newExt
}

// WithConfig replaces the engine configuration.
//
// Example:
//
//	cfg := outline.DefaultConfig()
//	cfg.MaxLevels = 3
//	result, err := titulus.Open("doc.pdf").WithConfig(cfg).Outline()
func (e *Extractor) WithConfig(cfg outline.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = cfg
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document reads the file and returns its extracted pages and bookmarks
// without running inference.
func (e *Extractor) Document() (*model.Document, error) {
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	doc, err := reader.New().ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", e.filename, err)
	}
	return doc, nil
}

// Outline reads the file and infers its title and heading outline.
// Inference itself never fails; an error means the file could not be
// read. The returned Outline slice is never nil.
func (e *Extractor) Outline() (Result, error) {
	doc, err := e.Document()
	if err != nil {
		return Result{Outline: []model.OutlineEntry{}}, err
	}
	return e.infer(doc), nil
}

// JSON runs Outline and serializes the result with two-level nesting:
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 0}]}
func (e *Extractor) JSON() ([]byte, error) {
	result, err := e.Outline()
	if err != nil {
		return nil, err
	}
	return sonic.ConfigDefault.MarshalIndent(result, "", "    ")
}

// infer runs language detection and the engine on an already-read
// document.
func (e *Extractor) infer(doc *model.Document) Result {
	var detector lang.Detector = lang.Whatlang{}
	if e.options.language != "" {
		detector = lang.Fixed(e.options.language)
	}

	if e.options.skipBookmarks {
		doc.Bookmarks = nil
	}

	engine := outline.NewEngineWithConfig(e.options.config)
	title, entries := engine.Extract(doc, detector.Detect(doc.Sample(langSamplePages)))
	if entries == nil {
		entries = []model.OutlineEntry{}
	}
	return Result{Title: title, Outline: entries}
}

package outline

import (
	"strings"

	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/text"
)

// Engine runs the outline inference pipeline. It carries only its
// configuration, so a single Engine may serve many documents, including
// concurrently.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the default configuration
func NewEngine() *Engine {
	return &Engine{cfg: DefaultConfig()}
}

// NewEngineWithConfig creates an engine with a custom configuration
func NewEngineWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// heading is an outline entry that still carries its geometry; geometry
// is needed through the merge stage and dropped afterwards.
type heading struct {
	level model.HeadingLevel
	text  string
	page  int
	bbox  model.BBox
}

// Extract infers the title and heading outline of one document. langCode
// selects the token-counting regime (see the text package). When the
// document embeds a native bookmark outline, bookmarks replace heuristic
// generation but still pass through validation and hierarchy repair.
//
// Extract never fails: a document the heuristics cannot read yields an
// empty title, an empty outline, or both.
func (e *Engine) Extract(doc *model.Document, langCode string) (string, []model.OutlineEntry) {
	if doc == nil {
		return "", nil
	}

	title := e.DetectTitle(doc)

	var entries []model.OutlineEntry
	if doc.HasBookmarks() {
		entries = renumberBookmarks(doc.Bookmarks)
	} else {
		entries = e.generate(doc, title, text.Classify(langCode))
	}

	entries = e.validate(entries, doc, title)
	return title, repairHierarchy(entries, e.cfg.MaxLevels)
}

// generate runs the heuristic stages: body-size estimation, candidate
// classification, style generalization, level assignment, and wrapped-
// line merging. Any stage that comes up empty short-circuits to an empty
// outline.
func (e *Engine) generate(doc *model.Document, title string, sc text.ScriptClass) []model.OutlineEntry {
	var lines []model.TextLine
	for _, p := range doc.Pages {
		lines = append(lines, p.Lines...)
	}
	if len(lines) == 0 {
		return nil
	}

	var normTitle string
	if title != "" {
		normTitle = text.NormalizeForSearch(title)
	}

	minBodyLen := e.cfg.minBodyTextLen(sc)
	bodySize, ok := estimateBodySize(lines, minBodyLen)
	if !ok {
		return nil
	}

	// Position constraints are evaluated against the first page's height;
	// pages of one document share a layout in the documents this engine
	// targets.
	pageHeight := doc.Pages[0].Height

	candidates := e.classify(lines, bodySize, pageHeight, sc, minBodyLen, normTitle)
	if len(candidates) == 0 {
		return nil
	}

	styles := e.confirmedStyles(candidates)
	if len(styles) == 0 {
		return nil
	}

	extra := e.generalize(lines, candidates, styles, pageHeight, sc, normTitle)
	leveled := e.assignLevels(append(candidates, extra...))
	if len(leveled) == 0 {
		return nil
	}

	return e.mergeWrapped(leveled)
}

// renumberBookmarks converts a native bookmark outline into candidate
// entries: bookmarks with non-positive pages are discarded, raw levels
// are shifted so the shallowest becomes level 1, and pages become
// 0-based. Hierarchy repair constrains the levels afterwards.
func renumberBookmarks(bookmarks []model.Bookmark) []model.OutlineEntry {
	minLevel := 0
	for _, b := range bookmarks {
		if b.Page <= 0 {
			continue
		}
		if minLevel == 0 || b.Level < minLevel {
			minLevel = b.Level
		}
	}
	if minLevel == 0 {
		return nil
	}

	var entries []model.OutlineEntry
	for _, b := range bookmarks {
		if b.Page <= 0 {
			continue
		}
		entries = append(entries, model.OutlineEntry{
			Level: model.HeadingLevel(b.Level - minLevel + 1),
			Text:  strings.TrimSpace(b.Title),
			Page:  b.Page - 1,
		})
	}
	return entries
}

// Package outline infers a document's title and heading outline from the
// typography and layout of its text lines.
//
// The engine works from weak signals only: font size relative to the
// dominant body size, boldness, vertical position, and the presence of
// ordinary body text below a candidate. Classified headings then pass
// through level assignment, wrapped-line merging, page-text validation,
// and a hierarchy repair pass that guarantees the emitted outline forms a
// legal H1..H4 nesting.
//
// Basic usage:
//
//	engine := outline.NewEngine()
//	title, entries := engine.Extract(doc, "en")
//
// Documents that embed a native bookmark outline skip heuristic
// generation: bookmarks are renumbered and fed straight into validation
// and hierarchy repair.
//
// The engine is purely functional over one document's data: it holds no
// per-document state, so one engine may be shared, and independent
// documents may be processed concurrently with independent calls.
package outline

// Package reader is the layout collaborator for the outline engine: it
// opens a PDF and materializes a model.Document: per-page text lines
// with geometry and font runs, each page's rendered text, and the native
// bookmark outline when the file embeds one.
//
// Text geometry comes from the glyph positions reported by
// github.com/ledongthuc/pdf; bookmarks are read with pdfcpu. Glyphs are
// grouped into rows by baseline, rows into lines with font runs, and all
// coordinates are flipped into reading space (top-left origin, Y down)
// using the page height.
package reader

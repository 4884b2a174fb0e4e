package model

// Page holds one page's extracted layout: its height, the ordered text
// lines with geometry and font metadata, and the full rendered text used
// for validation substring checks.
type Page struct {
	Height float64
	Lines  []TextLine
	Text   string
}

// Bookmark is one entry of a document's embedded (native) outline.
// Page is 1-based as reported by the source document; entries pointing
// at a non-positive page are discarded by the engine.
type Bookmark struct {
	Level int // raw nesting level, >= 1
	Title string
	Page  int
}

// Document is the extracted form of one source document: ordered pages
// plus the native bookmark outline when the source embeds one. It is
// scoped to a single inference run and never shared across documents.
type Document struct {
	Pages     []Page
	Bookmarks []Bookmark
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// HasBookmarks reports whether the source document embeds a native outline
func (d *Document) HasBookmarks() bool {
	return len(d.Bookmarks) > 0
}

// Sample returns the concatenated rendered text of up to the first n
// pages, used as a language identification sample.
func (d *Document) Sample(n int) string {
	if n > len(d.Pages) {
		n = len(d.Pages)
	}
	var sample string
	for i := 0; i < n; i++ {
		sample += d.Pages[i].Text
	}
	return sample
}

package reader

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/titulus/model"
)

// defaultPageHeight stands in when a page carries no usable MediaBox
// (US Letter, in points).
const defaultPageHeight = 792.0

// Reader materializes model.Documents from PDF files.
type Reader struct {
	// RowTolerance is the baseline Y tolerance for grouping glyphs into
	// one row. Default: 3 points
	RowTolerance float64

	// WordGapFactor is the fraction of the font size a horizontal gap
	// must exceed to count as a word boundary. Default: 0.3
	WordGapFactor float64
}

// New creates a Reader with default grouping thresholds
func New() *Reader {
	return &Reader{
		RowTolerance:  3.0,
		WordGapFactor: 0.3,
	}
}

// ReadFile opens a PDF and extracts its pages and native bookmarks.
// Individual pages that fail to extract become empty pages, keeping page
// indices aligned with the source document; only a file that cannot be
// opened at all returns an error.
func (r *Reader) ReadFile(path string) (*model.Document, error) {
	f, pr, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	doc := &model.Document{}

	total := pr.NumPage()
	for pageNum := 1; pageNum <= total; pageNum++ {
		pageIndex := pageNum - 1
		page := pr.Page(pageNum)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, model.Page{Height: defaultPageHeight})
			continue
		}

		height := pageHeight(page)
		lines := r.pageLines(page, height, pageIndex)

		texts := make([]string, len(lines))
		for i := range lines {
			texts[i] = lines[i].Text
		}

		doc.Pages = append(doc.Pages, model.Page{
			Height: height,
			Lines:  lines,
			Text:   strings.Join(texts, "\n"),
		})
	}

	// A file whose bookmark tree cannot be read still has readable
	// pages; the engine falls back to heuristics.
	if bookmarks, err := readBookmarks(path); err == nil {
		doc.Bookmarks = bookmarks
	}

	return doc, nil
}

// pageHeight reads the page's MediaBox height. Malformed boxes fall back
// to US Letter; a recover guards against panics from corrupt values deep
// in the PDF object graph.
func pageHeight(page pdf.Page) (height float64) {
	height = defaultPageHeight
	defer func() {
		if recover() != nil {
			height = defaultPageHeight
		}
	}()

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.IsNull() || mediaBox.Kind() != pdf.Array || mediaBox.Len() != 4 {
		return height
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v := mediaBox.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			coords[i] = float64(v.Int64())
		case pdf.Real:
			coords[i] = v.Float64()
		default:
			return height
		}
	}

	if h := coords[3] - coords[1]; h > 0 {
		height = h
	}
	return height
}

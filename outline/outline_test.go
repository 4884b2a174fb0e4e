package outline

import (
	"strings"

	"github.com/tsawler/titulus/model"
)

// makeLine creates a text line for pipeline tests. The line occupies one
// line-height-sized box starting at y0, with a single run in the given
// font.
func makeLine(text string, size float64, page int, y0 float64, fontName string) model.TextLine {
	return model.TextLine{
		Text: text,
		Size: size,
		Page: page,
		BBox: model.NewBBox(72, y0, 540, y0+size),
		Runs: []model.FontRun{{Text: text, Size: size, FontName: fontName}},
	}
}

// makePage assembles lines into a page with its rendered text, the way
// the layout reader does.
func makePage(height float64, lines ...model.TextLine) model.Page {
	texts := make([]string, len(lines))
	for i := range lines {
		texts[i] = lines[i].Text
	}
	return model.Page{
		Height: height,
		Lines:  lines,
		Text:   strings.Join(texts, "\n"),
	}
}

// bodyLine is a paragraph line long enough to confirm a heading
// candidate's context under the default thresholds.
func bodyLine(page int, y0 float64) model.TextLine {
	return makeLine(
		"This paragraph holds plenty of ordinary running body text for context checks.",
		10, page, y0, "Helvetica")
}

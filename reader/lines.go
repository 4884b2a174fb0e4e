package reader

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/titulus/model"
)

// pageLines extracts one page's text lines: glyphs grouped into rows by
// baseline, rows assembled into lines with word spacing and font runs,
// geometry flipped into reading coordinates. Extraction failures on a
// single page yield no lines rather than an error.
func (r *Reader) pageLines(page pdf.Page, height float64, pageIndex int) (lines []model.TextLine) {
	defer func() {
		if recover() != nil {
			lines = nil
		}
	}()

	content := page.Content()
	glyphs := make([]pdf.Text, 0, len(content.Text))
	for _, g := range content.Text {
		if strings.TrimSpace(g.S) != "" {
			glyphs = append(glyphs, g)
		}
	}
	if len(glyphs) == 0 {
		return nil
	}

	for _, row := range r.groupIntoRows(glyphs) {
		if line, ok := r.assembleLine(row, height, pageIndex); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// groupIntoRows buckets glyphs by baseline Y within RowTolerance and
// returns the rows top to bottom (descending Y in PDF coordinates).
func (r *Reader) groupIntoRows(glyphs []pdf.Text) [][]pdf.Text {
	type bucket struct {
		yMin, yMax float64
		glyphs     []pdf.Text
	}

	var buckets []bucket
	for _, g := range glyphs {
		placed := false
		for i := range buckets {
			if g.Y >= buckets[i].yMin-r.RowTolerance && g.Y <= buckets[i].yMax+r.RowTolerance {
				buckets[i].glyphs = append(buckets[i].glyphs, g)
				if g.Y < buckets[i].yMin {
					buckets[i].yMin = g.Y
				}
				if g.Y > buckets[i].yMax {
					buckets[i].yMax = g.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: g.Y, yMax: g.Y, glyphs: []pdf.Text{g}})
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].yMax > buckets[j].yMax
	})

	rows := make([][]pdf.Text, len(buckets))
	for i := range buckets {
		rows[i] = buckets[i].glyphs
	}
	return rows
}

// assembleLine turns one row of glyphs into a TextLine: glyphs sorted by
// X, word boundaries inserted at horizontal gaps, consecutive glyphs of
// one font folded into font runs, and the line size computed as the
// glyph-length-weighted average of run sizes.
func (r *Reader) assembleLine(row []pdf.Text, height float64, pageIndex int) (model.TextLine, bool) {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X < row[j].X
	})

	var (
		runs    []model.FontRun
		current *model.FontRun
		text    strings.Builder

		x0     = row[0].X
		x1     = row[0].X + row[0].W
		yLow   = row[0].Y
		yHigh  = row[0].Y
		maxSz  = row[0].FontSize
		prevX1 = row[0].X
	)

	for i, g := range row {
		if g.X+g.W > x1 {
			x1 = g.X + g.W
		}
		if g.Y < yLow {
			yLow = g.Y
		}
		if g.Y > yHigh {
			yHigh = g.Y
		}
		if g.FontSize > maxSz {
			maxSz = g.FontSize
		}

		piece := g.S
		if i > 0 {
			gap := g.X - prevX1
			threshold := r.WordGapFactor * g.FontSize
			if threshold == 0 {
				threshold = 3.0
			}
			if gap > threshold {
				piece = " " + piece
			}
		}
		prevX1 = g.X + g.W

		if current != nil && current.FontName == g.Font && current.Size == g.FontSize {
			current.Text += piece
		} else {
			if current != nil {
				runs = append(runs, *current)
			}
			current = &model.FontRun{
				Text:     piece,
				Size:     g.FontSize,
				FontName: g.Font,
			}
		}
		text.WriteString(piece)
	}
	if current != nil {
		runs = append(runs, *current)
	}

	lineText := strings.TrimSpace(text.String())
	if lineText == "" {
		return model.TextLine{}, false
	}

	return model.TextLine{
		Text: lineText,
		Size: weightedSize(runs),
		// Flip from PDF bottom-up baselines to reading coordinates:
		// the top edge sits one font size above the highest baseline.
		BBox: model.NewBBox(x0, height-(yHigh+maxSz), x1, height-yLow),
		Page: pageIndex,
		Runs: runs,
	}, true
}

// weightedSize averages run sizes weighted by run length in characters,
// so multibyte scripts carry the same weight per glyph as ASCII.
func weightedSize(runs []model.FontRun) float64 {
	total := 0
	sum := 0.0
	for _, run := range runs {
		n := utf8.RuneCountInString(run.Text)
		total += n
		sum += run.Size * float64(n)
	}
	if total == 0 {
		return 0
	}
	return sum / float64(total)
}

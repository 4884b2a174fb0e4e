package outline

import (
	"unicode/utf8"

	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/text"
)

// confirmedStyles collects the distinct font styles of confirmed heading
// candidates. Styles with no measurable size carry no signature and are
// skipped.
func (e *Engine) confirmedStyles(candidates []model.TextLine) []model.FontStyle {
	var styles []model.FontStyle
	for i := range candidates {
		s := candidates[i].Style(e.cfg.BoldFontMarkers, e.cfg.ItalicFontMarkers)
		if s.Size > 0 {
			styles = append(styles, s)
		}
	}
	return styles
}

// generalize recovers headings that share a confirmed heading's style
// signature but failed the context check, typically a heading
// immediately followed by another heading instead of body text. A
// promoted line must still independently look like a heading: a sane
// token count, position inside the margins, and text outside the title.
// The confirmed-style set is an explicit input; this pass never feeds
// back into classification.
func (e *Engine) generalize(lines, candidates []model.TextLine, styles []model.FontStyle, pageHeight float64, sc text.ScriptClass, normTitle string) []model.TextLine {
	seen := make(map[string]bool, len(candidates))
	for i := range candidates {
		seen[candidates[i].Text] = true
	}

	var promoted []model.TextLine
	for i := range lines {
		l := &lines[i]
		if seen[l.Text] {
			continue
		}

		style := l.Style(e.cfg.BoldFontMarkers, e.cfg.ItalicFontMarkers)
		if style.Size == 0 {
			continue
		}

		matched := false
		for _, hs := range styles {
			if style.Matches(hs, e.cfg.StyleSizeTolerance) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		tokens := sc.TokenCount(l.Text)
		reasonable := tokens >= e.cfg.BoldHeadingMinTokens && tokens <= e.cfg.HeadingMaxTokens &&
			utf8.RuneCountInString(l.Text) > 2 &&
			e.insideMargins(l.BBox.Y0, pageHeight) &&
			e.outsideTitle(l.Text, normTitle)

		if reasonable {
			promoted = append(promoted, *l)
			seen[l.Text] = true
		}
	}

	return promoted
}

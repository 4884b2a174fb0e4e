package outline

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/text"
)

// terminalPunctuation ends sentences, quotes, and brackets; a line closed
// by one of these reads as body text, not a heading. An ellipsis is the
// exception: truncated headings legitimately end with one.
const terminalPunctuation = `.,;:!?"')]}`

// classify flags individual lines as heading candidates. A line
// qualifies through the size rule (markedly larger than body text) or the
// bold rule (bold at roughly body size), and must then survive the
// context check: real headings are followed by ordinary body text on the
// same page.
func (e *Engine) classify(lines []model.TextLine, bodySize int, pageHeight float64, sc text.ScriptClass, minBodyLen int, normTitle string) []model.TextLine {
	var candidates []model.TextLine

	for i := range lines {
		l := &lines[i]
		tokens := sc.TokenCount(l.Text)
		style := l.Style(e.cfg.BoldFontMarkers, e.cfg.ItalicFontMarkers)

		sizeRule := l.Size >= e.cfg.HeadingSizeFactor*float64(bodySize) &&
			tokens >= e.cfg.HeadingMinTokens && tokens <= e.cfg.HeadingMaxTokens &&
			e.insideMargins(l.BBox.Y0, pageHeight) &&
			e.outsideTitle(l.Text, normTitle)

		boldRule := style.Bold &&
			style.Size >= bodySize-1 && style.Size <= bodySize+2 &&
			tokens >= e.cfg.BoldHeadingMinTokens && tokens <= e.cfg.HeadingMaxTokens &&
			utf8.RuneCountInString(l.Text) > 2 &&
			e.insideMargins(l.BBox.Y0, pageHeight) &&
			e.outsideTitle(l.Text, normTitle)

		if !sizeRule && !boldRule {
			continue
		}

		if e.validContext(lines, i, bodySize, minBodyLen, sc) {
			candidates = append(candidates, *l)
		}
	}

	return candidates
}

// insideMargins reports whether a line's top edge sits strictly inside
// the configured header/footer margins.
func (e *Engine) insideMargins(y0, pageHeight float64) bool {
	return y0 > e.cfg.HeaderFooterMargin*pageHeight &&
		y0 < (1-e.cfg.HeaderFooterMargin)*pageHeight
}

// outsideTitle reports whether a line's normalized text is not contained
// in the normalized title. Title fragments re-detected as headings would
// otherwise duplicate the title inside the outline.
func (e *Engine) outsideTitle(lineText, normTitle string) bool {
	if normTitle == "" {
		return true
	}
	return !strings.Contains(normTitle, text.NormalizeForSearch(lineText))
}

// validContext decides whether the candidate at index i reads as a
// heading in context. The line itself must not look like a label, a
// sentence fragment, or boilerplate; and within the next few lines of
// the same page there must be at least one line of ordinary body text.
func (e *Engine) validContext(lines []model.TextLine, i int, bodySize, minBodyLen int, sc text.ScriptClass) bool {
	line := &lines[i]
	trimmed := strings.TrimSpace(line.Text)

	if utf8.RuneCountInString(trimmed) < 3 {
		return false
	}
	if hasTerminalPunctuation(trimmed) {
		return false
	}
	for _, p := range e.cfg.LabelPatterns {
		if p.MatchString(trimmed) {
			return false
		}
	}
	for _, p := range e.cfg.BoilerplatePatterns {
		if p.MatchString(trimmed) {
			return false
		}
	}

	limit := i + e.cfg.LookaheadLines
	if limit > len(lines) {
		limit = len(lines)
	}

	confirming := 0
	consecutive := 0

	for next := i + 1; next < limit; next++ {
		nl := &lines[next]
		if nl.Page != line.Page {
			break
		}

		ntext := strings.TrimSpace(nl.Text)
		if utf8.RuneCountInString(ntext) < 3 {
			continue
		}

		nsize := model.RoundSize(nl.Size)
		if float64(nsize) > line.Size+e.cfg.SizeBreakDelta {
			// Larger type below the candidate: the candidate is not
			// heading its own section.
			break
		}

		ntokens := sc.TokenCount(ntext)
		if absInt(nsize-bodySize) <= e.cfg.BodySizeTolerance &&
			ntokens >= minBodyLen &&
			utf8.RuneCountInString(ntext) >= e.cfg.MinBodyLineChars {
			confirming++
			consecutive++
			if consecutive >= 1 && float64(ntokens) >= float64(minBodyLen)*e.cfg.StrongBodyFactor {
				return true
			}
		} else {
			consecutive = 0
		}

		if next-i > e.cfg.LookaheadPatience && confirming == 0 {
			break
		}
	}

	return false
}

// hasTerminalPunctuation reports whether the text ends in sentence
// punctuation, excluding a trailing ellipsis.
func hasTerminalPunctuation(s string) bool {
	if strings.HasSuffix(s, "...") {
		return false
	}
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return false
	}
	return strings.ContainsRune(terminalPunctuation, r)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

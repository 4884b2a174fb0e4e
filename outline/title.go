package outline

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/titulus/model"
)

// titleLine is one first-page line viewed by the title detector. The
// detector judges lines by their first run's size, the way the text was
// actually set, rather than the length-weighted average.
type titleLine struct {
	text   string
	size   float64
	y0, y1 float64
}

// DetectTitle finds the document title from the first page's geometry.
// It runs a strict candidate pass and, when that result is shorter than
// Config.TitleRetryBelow characters, a flexible pass that accepts smaller
// type and looser line spacing, keeping whichever result is longer.
// A document with no usable first page yields an empty title; title
// detection never fails the pipeline.
func (e *Engine) DetectTitle(doc *model.Document) string {
	if doc == nil || len(doc.Pages) == 0 {
		return ""
	}

	var lines []titleLine
	for i := range doc.Pages[0].Lines {
		l := &doc.Pages[0].Lines[i]
		txt := strings.TrimSpace(l.Text)
		if txt == "" {
			continue
		}
		size := l.Size
		if len(l.Runs) > 0 {
			size = l.Runs[0].Size
		}
		lines = append(lines, titleLine{
			text: txt,
			size: size,
			y0:   l.BBox.Y0,
			y1:   l.BBox.Y1,
		})
	}
	if len(lines) == 0 {
		return ""
	}

	strict := e.titleCandidate(lines, e.cfg.TitleStrictSizeRatio, e.cfg.TitleStrictLineSpacing, false)
	if utf8.RuneCountInString(strict) < e.cfg.TitleRetryBelow {
		flexible := e.titleCandidate(lines, e.cfg.TitleFlexibleSizeRatio, e.cfg.TitleFlexibleLineSpacing, true)
		if utf8.RuneCountInString(flexible) > utf8.RuneCountInString(strict) {
			return flexible
		}
	}
	return strict
}

// titleCandidate extracts one title candidate: keep lines near the page's
// maximum size, cluster them vertically, pick a cluster, and join its
// text. Returns "" when no acceptable candidate exists.
func (e *Engine) titleCandidate(lines []titleLine, sizeRatio, lineSpacing float64, pickLargest bool) string {
	maxSize := 0.0
	for _, l := range lines {
		if l.size > maxSize {
			maxSize = l.size
		}
	}
	if maxSize == 0 {
		return ""
	}

	threshold := maxSize * sizeRatio
	var kept []titleLine
	for _, l := range lines {
		if l.size >= threshold {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return ""
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].y0 < kept[j].y0
	})

	// Greedy vertical clustering: a line joins the current cluster when
	// the gap below the previous line stays under lineSpacing times the
	// previous line's size.
	var clusters [][]titleLine
	current := []titleLine{kept[0]}
	for i := 1; i < len(kept); i++ {
		prev := current[len(current)-1]
		if kept[i].y0-prev.y1 < prev.size*lineSpacing {
			current = append(current, kept[i])
		} else {
			clusters = append(clusters, current)
			current = []titleLine{kept[i]}
		}
	}
	clusters = append(clusters, current)

	chosen := clusters[0]
	if pickLargest {
		for _, c := range clusters[1:] {
			if len(c) > len(chosen) || (len(c) == len(chosen) && c[0].y0 < chosen[0].y0) {
				chosen = c
			}
		}
	}

	parts := make([]string, len(chosen))
	for i, l := range chosen {
		parts[i] = l.text
	}
	title := strings.TrimSpace(strings.Join(parts, " "))

	if len(strings.Fields(title)) > e.cfg.TitleMaxWords || strings.HasSuffix(title, "!") {
		return ""
	}
	return title
}

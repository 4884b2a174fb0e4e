package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/titulus/model"
)

// mergeWrapped joins headings that are really one heading wrapped across
// lines: same page, same assigned level, and the second line starting
// within a fraction of the first line's height below it. Merging joins
// the text with a single space; the first line's geometry stands for the
// merged heading, so a three-line heading folds into the first line one
// wrap at a time. Geometry is dropped after this stage.
func (e *Engine) mergeWrapped(headings []heading) []model.OutlineEntry {
	if len(headings) == 0 {
		return nil
	}

	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].page != headings[j].page {
			return headings[i].page < headings[j].page
		}
		return headings[i].bbox.Y0 < headings[j].bbox.Y0
	})

	merged := []heading{headings[0]}
	for _, cur := range headings[1:] {
		prev := &merged[len(merged)-1]
		gap := cur.bbox.Y0 - prev.bbox.Y1
		if cur.page == prev.page &&
			cur.level == prev.level &&
			gap >= e.cfg.MergeMinGap &&
			gap < prev.bbox.Height()*e.cfg.MergeMaxGapRatio {
			prev.text = strings.TrimRight(prev.text, " \t\r\n") + " " + cur.text
		} else {
			merged = append(merged, cur)
		}
	}

	entries := make([]model.OutlineEntry, len(merged))
	for i, h := range merged {
		entries[i] = model.OutlineEntry{Level: h.level, Text: h.text, Page: h.page}
	}
	return entries
}

package outline

import (
	"strings"

	"github.com/tsawler/titulus/model"
	"github.com/tsawler/titulus/text"
)

// validate drops outline entries the document itself does not support.
// Every entry's normalized text must appear verbatim in the normalized
// text of its claimed page (this rejects stale bookmarks pointing at
// moved or retitled content) and must not be contained in the normalized
// title, which removes accidental re-detections of the title.
func (e *Engine) validate(entries []model.OutlineEntry, doc *model.Document, title string) []model.OutlineEntry {
	if len(entries) == 0 {
		return nil
	}

	pageTexts := make([]string, len(doc.Pages))
	for i := range doc.Pages {
		pageTexts[i] = text.NormalizeForSearch(doc.Pages[i].Text)
	}

	var normTitle string
	if title != "" {
		normTitle = text.NormalizeForSearch(title)
	}

	var kept []model.OutlineEntry
	for _, entry := range entries {
		norm := text.NormalizeForSearch(entry.Text)

		onPage := entry.Page >= 0 && entry.Page < len(pageTexts) &&
			strings.Contains(pageTexts[entry.Page], norm)
		inTitle := normTitle != "" && strings.Contains(normTitle, norm)

		if onPage && !inTitle {
			kept = append(kept, entry)
		}
	}
	return kept
}

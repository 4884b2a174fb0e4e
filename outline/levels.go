package outline

import (
	"sort"

	"github.com/tsawler/titulus/model"
)

// assignLevels ranks the distinct rounded sizes of the accepted headings
// and maps the largest MaxLevels of them to H1..H4 in order. Headings
// whose size falls outside the top ranks are dropped: rarely-used sizes
// beyond four levels are overwhelmingly decorative, and precision wins
// over recall here.
func (e *Engine) assignLevels(headings []model.TextLine) []heading {
	if len(headings) == 0 {
		return nil
	}

	distinct := make(map[int]bool)
	for i := range headings {
		distinct[model.RoundSize(headings[i].Size)] = true
	}

	sizes := make([]int, 0, len(distinct))
	for size := range distinct {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	levelOf := make(map[int]model.HeadingLevel, e.cfg.MaxLevels)
	for rank, size := range sizes {
		if rank >= e.cfg.MaxLevels {
			break
		}
		levelOf[size] = model.HeadingLevel(rank + 1)
	}

	var leveled []heading
	for i := range headings {
		h := &headings[i]
		level, ok := levelOf[model.RoundSize(h.Size)]
		if !ok {
			continue
		}
		leveled = append(leveled, heading{
			level: level,
			text:  h.Text,
			page:  h.Page,
			bbox:  h.BBox,
		})
	}
	return leveled
}

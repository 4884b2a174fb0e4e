package outline

import (
	"unicode/utf8"

	"github.com/tsawler/titulus/model"
)

// estimateBodySize finds the dominant font size of ordinary paragraph
// text: the most frequent rounded size among lines longer than minLen
// characters. When no line qualifies, all lines are used. Ties go to the
// size encountered first in document order, which keeps the estimate
// deterministic. Returns false when there are no lines at all.
func estimateBodySize(lines []model.TextLine, minLen int) (int, bool) {
	if len(lines) == 0 {
		return 0, false
	}

	qualifying := lines[:0:0]
	for _, l := range lines {
		if utf8.RuneCountInString(l.Text) > minLen {
			qualifying = append(qualifying, l)
		}
	}
	if len(qualifying) == 0 {
		qualifying = lines
	}

	counts := make(map[int]int)
	var order []int
	for _, l := range qualifying {
		size := model.RoundSize(l.Size)
		if counts[size] == 0 {
			order = append(order, size)
		}
		counts[size]++
	}

	best, bestCount := 0, 0
	for _, size := range order {
		if counts[size] > bestCount {
			best, bestCount = size, counts[size]
		}
	}
	return best, bestCount > 0
}

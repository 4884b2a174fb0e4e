package outline

import "github.com/tsawler/titulus/model"

// repairHierarchy enforces a legal nesting sequence on an ordered entry
// list. It walks the list with a small stack of currently open levels
// (deepest last, at most maxLevels entries):
//
//   - the first entry is forced to level 1;
//   - an entry at the open level, or one deeper, is accepted as-is;
//   - an entry that jumps more than one level deeper is clamped to one
//     below the open level;
//   - an entry shallower than the open level pops the stack back to a
//     level that can legally contain it, clamping if the claimed level
//     would still leave a gap.
//
// The result is an outline where no entry is ever more than one level
// deeper than its nearest open ancestor, no matter how noisy the raw
// level assignment was. Raw levels outside 1..maxLevels are legal input;
// output levels never are.
func repairHierarchy(entries []model.OutlineEntry, maxLevels int) []model.OutlineEntry {
	if len(entries) == 0 {
		return nil
	}

	fixed := make([]model.OutlineEntry, 0, len(entries))
	stack := make([]int, 0, maxLevels)

	for i, entry := range entries {
		level := int(entry.Level)

		if i == 0 {
			entry.Level = model.HeadingLevel1
			stack = append(stack[:0], 1)
			fixed = append(fixed, entry)
			continue
		}

		top := 1
		if len(stack) > 0 {
			top = stack[len(stack)-1]
		}

		switch {
		case level == top:
			fixed = append(fixed, entry)

		case level == top+1:
			if level > maxLevels {
				level = maxLevels
				entry.Level = model.HeadingLevel(level)
			}
			if level > top {
				stack = append(stack, level)
			}
			fixed = append(fixed, entry)

		case level > top+1:
			clamped := top + 1
			if clamped > maxLevels {
				clamped = maxLevels
			}
			entry.Level = model.HeadingLevel(clamped)
			stack = append(stack, clamped)
			fixed = append(fixed, entry)

		default: // level < top: close deeper sections first
			for len(stack) > 0 && stack[len(stack)-1] >= level {
				stack = stack[:len(stack)-1]
			}

			if len(stack) == 0 || level <= maxOf(stack)+1 {
				if !containsLevel(stack, level) {
					stack = append(stack, level)
				}
				fixed = append(fixed, entry)
			} else {
				clamped := maxOf(stack) + 1
				if clamped > maxLevels {
					clamped = maxLevels
				}
				entry.Level = model.HeadingLevel(clamped)
				stack = append(stack, clamped)
				fixed = append(fixed, entry)
			}
		}
	}

	return fixed
}

func maxOf(stack []int) int {
	max := 0
	for _, l := range stack {
		if l > max {
			max = l
		}
	}
	return max
}

func containsLevel(stack []int, level int) bool {
	for _, l := range stack {
		if l == level {
			return true
		}
	}
	return false
}

// Package pool maps a fixed number of rendering slots onto main-axis rows.
//
// Slots whose row is still inside the live window keep their row across
// recomputations; only slots whose row left the window are recycled. One
// extra slot is reserved for the row holding keyboard focus so focus is never
// dropped by scrolling.
package pool

import "slices"

// Diff computes the next row assignment of the slot pool.
//
// total is the number of rows, focusRow the row holding focus, positionCount
// the number of live rows starting at start. prevStart and prev describe the
// previous pass. The returned slice has positionCount entries when
// everything fits and positionCount+1 entries when windowing is active.
//
// prev is never modified. When the static layout is unchanged, prev itself is
// returned.
func Diff(total, focusRow, positionCount, start, prevStart int, prev []int) []int {
	positionCount = max(positionCount, 0)

	if total <= positionCount {
		if len(prev) == positionCount && start == prevStart {
			return prev
		}
		return sequence(0, positionCount)
	}

	end := start + positionCount
	outOfBounds := func(p int) bool {
		return p < start || p >= end
	}

	reserved := focusRow
	if !outOfBounds(focusRow) {
		if end < total {
			reserved = end
		} else {
			reserved = start - 1
		}
	}

	if len(prev) != positionCount+1 {
		next := sequence(start, positionCount)
		return append(next, reserved)
	}

	present := make(map[int]struct{}, len(prev))
	for _, p := range prev {
		present[p] = struct{}{}
	}

	needed := make([]int, 0, positionCount)
	for p := start; p < end; p++ {
		if _, ok := present[p]; !ok {
			needed = append(needed, p)
		}
	}
	if _, ok := present[reserved]; !ok {
		needed = append(needed, reserved)
	}

	next := slices.Clone(prev)
	for i, p := range next {
		if len(needed) == 0 {
			break
		}
		if !outOfBounds(p) || p == reserved {
			continue
		}
		next[i] = needed[len(needed)-1]
		needed = needed[:len(needed)-1]
	}
	return next
}

func sequence(from, n int) []int {
	s := make([]int, n, n+1)
	for i := range s {
		s[i] = from + i
	}
	return s
}

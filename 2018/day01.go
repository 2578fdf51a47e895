package main

import (
	"errors"
	"fmt"

	"aoc2018"
)

func parseShifts(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for _, l := range lines {
		v, err := aoc.IntsN(l, 1, aoc.IsSpace)
		if err != nil {
			return nil, fmt.Errorf("frequency shift: %w", err)
		}
		out = append(out, v[0])
	}
	return out, nil
}

// maxShiftPasses bounds how many times firstRepeat cycles through the
// list. Shifts that only drift one way, like a single +1, never repeat.
const maxShiftPasses = 100_000

var errNoRepeat = errors.New("frequency never repeats")

// firstRepeat cycles through shifts and returns the first running total
// seen twice. The starting 0 counts as seen.
func firstRepeat(shifts []int) (int, error) {
	if len(shifts) == 0 {
		return 0, nil
	}
	seen := map[int]bool{0: true}
	freq := 0
	for pass := 0; pass < maxShiftPasses; pass++ {
		for _, v := range shifts {
			freq += v
			if seen[freq] {
				return freq, nil
			}
			seen[freq] = true
		}
	}
	return 0, fmt.Errorf("%w after %d passes", errNoRepeat, maxShiftPasses)
}

/*
want=3

+1
-2
+3
+1
*/
func (s solver) D1p1() any {
	return aoc.Sum(aoc.MustGet(parseShifts(s.Lines()))...)
}

// want=2
func (s solver) D1p2() any {
	return aoc.MustGet(firstRepeat(aoc.MustGet(parseShifts(s.Lines()))))
}

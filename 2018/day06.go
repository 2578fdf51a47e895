package main

import (
	"fmt"

	"aoc2018"
)

func parseSeeds(lines []string) ([]aoc.Pt, error) {
	seeds := make([]aoc.Pt, 0, len(lines))
	for _, l := range lines {
		v, err := aoc.IntsN(l, 2, aoc.NotDigit)
		if err != nil {
			return nil, fmt.Errorf("coordinate: %w", err)
		}
		seeds = append(seeds, aoc.Pt{X: v[0], Y: v[1]})
	}
	return seeds, nil
}

// closestSeed returns the index of the seed nearest to p, or -1 when two or
// more seeds tie.
func closestSeed(seeds []aoc.Pt, p aoc.Pt) int {
	best, bestDist, tied := -1, -1, false
	for i, s := range seeds {
		d := s.MDist(p)
		switch {
		case best == -1 || d < bestDist:
			best, bestDist, tied = i, d, false
		case d == bestDist:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return best
}

// largestRegion returns the size of the largest Manhattan-Voronoi region
// that does not reach the seeds' bounding box, and so is finite.
func largestRegion(seeds []aoc.Pt) int {
	bounds := aoc.BoundingBox(seeds...)
	sizes := make([]int, len(seeds))
	infinite := make([]bool, len(seeds))
	bounds.ForPoints(func(p aoc.Pt) bool {
		if i := closestSeed(seeds, p); i != -1 {
			sizes[i]++
			if bounds.OnEdge(p) {
				infinite[i] = true
			}
		}
		return true
	})
	best := 0
	for i, n := range sizes {
		if !infinite[i] {
			best = max(best, n)
		}
	}
	return best
}

// safeRegion counts the points of the bounding box whose total distance to
// all seeds is below limit.
func safeRegion(seeds []aoc.Pt, limit int) int {
	n := 0
	aoc.BoundingBox(seeds...).ForPoints(func(p aoc.Pt) bool {
		total := 0
		for _, s := range seeds {
			total += s.MDist(p)
		}
		if total < limit {
			n++
		}
		return true
	})
	return n
}

/*
want=17

1, 1
1, 6
8, 3
3, 4
5, 5
8, 9
*/
func (s solver) D6p1() any {
	return largestRegion(aoc.MustGet(parseSeeds(s.Lines())))
}

// want=16
func (s solver) D6p2() any {
	limit := 10000
	if s.SampleMode {
		limit = 32
	}
	return safeRegion(aoc.MustGet(parseSeeds(s.Lines())), limit)
}

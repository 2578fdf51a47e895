package main

import (
	"errors"
	"fmt"

	"aoc2018"
)

type claim struct {
	id   int
	area aoc.Rect
}

// parseClaim parses "#123 @ 3,2: 5x4".
func parseClaim(line string) (claim, error) {
	v, err := aoc.IntsN(line, 5, aoc.NotDigit)
	if err != nil {
		return claim{}, fmt.Errorf("claim: %w", err)
	}
	return claim{
		id:   v[0],
		area: aoc.RectOf(aoc.Pt{X: v[1], Y: v[2]}, v[3], v[4]),
	}, nil
}

func parseClaims(lines []string) ([]claim, error) {
	claims := make([]claim, 0, len(lines))
	for _, l := range lines {
		c, err := parseClaim(l)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, nil
}

// fabric counts how many claims cover each square inch.
type fabric map[aoc.Pt]int

func newFabric(claims []claim) fabric {
	f := make(fabric)
	for _, c := range claims {
		c.area.ForPoints(func(p aoc.Pt) bool {
			f[p]++
			return true
		})
	}
	return f
}

func (f fabric) overlapping() int {
	n := 0
	for _, c := range f {
		if c >= 2 {
			n++
		}
	}
	return n
}

var errNoIntactClaim = errors.New("every claim overlaps another")

// intactClaim returns the id of the first claim that shares no square inch
// with any other claim.
func intactClaim(claims []claim) (int, error) {
	for i, c := range claims {
		ok := true
		for j, o := range claims {
			if i != j && !c.area.Intersect(o.area).Empty() {
				ok = false
				break
			}
		}
		if ok {
			return c.id, nil
		}
	}
	return 0, errNoIntactClaim
}

/*
want=4

#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
*/
func (s solver) D3p1() any {
	claims := aoc.MustGet(parseClaims(s.Lines()))
	return newFabric(claims).overlapping()
}

// want=3
func (s solver) D3p2() any {
	claims := aoc.MustGet(parseClaims(s.Lines()))
	return aoc.MustGet(intactClaim(claims))
}

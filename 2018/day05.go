package main

import "aoc2018"

// reacts reports whether a and b are the same unit type with opposite
// polarity.
func reacts(a, b byte) bool {
	return a != b && a|0x20 == b|0x20
}

// reduce fully reacts polymer, skipping units of type skip (any case; 0
// skips nothing), and returns the remaining length. st is scratch space.
func reduce(polymer string, skip byte, st *aoc.Stack[byte]) int {
	st.Reset()
	skip |= 0x20
	for i := 0; i < len(polymer); i++ {
		u := polymer[i]
		if u|0x20 == skip {
			continue
		}
		if top, ok := st.Peek(); ok && reacts(top, u) {
			st.Pop()
			continue
		}
		st.Push(u)
	}
	return st.Len()
}

// shortestPolymer removes each unit type in turn and returns the shortest
// fully reacted result.
func shortestPolymer(polymer string) int {
	var st aoc.Stack[byte]
	best := len(polymer)
	for c := byte('a'); c <= 'z'; c++ {
		best = min(best, reduce(polymer, c, &st))
	}
	return best
}

/*
want=10

dabAcCaCBAcCcaDA
*/
func (s solver) D5p1() any {
	var st aoc.Stack[byte]
	return reduce(s.Text(), 0, &st)
}

// want=4
func (s solver) D5p2() any {
	return shortestPolymer(s.Text())
}

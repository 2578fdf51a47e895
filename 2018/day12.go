package main

import (
	"errors"
	"fmt"
	"strings"

	"tailscale.com/util/deephash"

	"aoc2018"
)

// potRules maps each 5-pot neighbourhood, read left to right as the bits of
// a number (most significant first, '#' = 1), to the next state of its
// centre pot. Neighbourhoods without a rule produce an empty pot.
type potRules [32]bool

var errUnboundedRule = errors.New(`rule "....." => "#" would pot infinitely many pots`)

func potBits(s string) (int, error) {
	idx := 0
	for i := 0; i < len(s); i++ {
		idx <<= 1
		switch s[i] {
		case '#':
			idx |= 1
		case '.':
		default:
			return 0, fmt.Errorf("%w: bad pot %q in %q", aoc.ErrParse, s[i], s)
		}
	}
	return idx, nil
}

func parsePotRules(lines []string) (*potRules, error) {
	var rules potRules
	var seen [32]bool
	for _, l := range lines {
		pat, res, ok := strings.Cut(l, " => ")
		if !ok || len(pat) != 5 || len(res) != 1 {
			return nil, fmt.Errorf("%w: rule %q", aoc.ErrParse, l)
		}
		idx, err := potBits(pat)
		if err != nil {
			return nil, err
		}
		out, err := potBits(res)
		if err != nil {
			return nil, err
		}
		if seen[idx] && rules[idx] != (out == 1) {
			return nil, fmt.Errorf("%w: rule %q conflicts with an earlier one", aoc.ErrParse, l)
		}
		seen[idx] = true
		rules[idx] = out == 1
	}
	if rules[0] {
		return nil, errUnboundedRule
	}
	return &rules, nil
}

// potRow is a row of pots unbounded in both directions. Only the span
// around the potted pots is stored; pots[origin] is pot number 0, so origin
// may be negative or beyond the slice.
type potRow struct {
	pots       []bool
	next       []bool // scratch for the following generation
	origin     int
	generation int
}

func newPotRow(initial string) (*potRow, error) {
	r := &potRow{pots: make([]bool, len(initial))}
	for i := 0; i < len(initial); i++ {
		switch initial[i] {
		case '#':
			r.pots[i] = true
		case '.':
		default:
			return nil, fmt.Errorf("%w: bad pot %q in initial state %q", aoc.ErrParse, initial[i], initial)
		}
	}
	return r, nil
}

func parsePots(lines []string) (*potRow, *potRules, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: empty pot input", aoc.ErrParse)
	}
	initial, ok := strings.CutPrefix(lines[0], "initial state: ")
	if !ok {
		return nil, nil, fmt.Errorf("%w: initial state %q", aoc.ErrParse, lines[0])
	}
	row, err := newPotRow(initial)
	if err != nil {
		return nil, nil, err
	}
	rules, err := parsePotRules(lines[1:])
	if err != nil {
		return nil, nil, err
	}
	return row, rules, nil
}

// get reports whether pot i is potted.
func (r *potRow) get(i int) bool {
	i += r.origin
	return i >= 0 && i < len(r.pots) && r.pots[i]
}

// span returns the slice indices of the first and last potted pot, or
// ok=false if no pot is potted.
func (r *potRow) span() (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for i, p := range r.pots {
		if p {
			if lo == -1 {
				lo = i
			}
			hi = i
		}
	}
	return lo, hi, lo != -1
}

// step advances one generation. Only pots within two of a potted pot can
// change, so the next row covers exactly that range.
func (r *potRow) step(rules *potRules) {
	r.generation++
	lo, hi, ok := r.span()
	if !ok {
		return
	}
	first, last := lo-r.origin-2, hi-r.origin+2
	r.next = r.next[:0]
	idx := 0 // neighbourhood of pot a; pots left of lo are empty
	for a := first; a <= last; a++ {
		idx <<= 1
		if r.get(a + 2) {
			idx |= 1
		}
		idx &= 31
		r.next = append(r.next, rules[idx])
	}
	r.pots, r.next = r.next, r.pots
	r.origin = -first
}

// sum adds up the numbers of the potted pots.
func (r *potRow) sum() int64 {
	var total int64
	for i, p := range r.pots {
		if p {
			total += int64(i - r.origin)
		}
	}
	return total
}

func (r *potRow) potted() []int {
	var out []int
	for i, p := range r.pots {
		if p {
			out = append(out, i-r.origin)
		}
	}
	return out
}

// shape returns a digest of the potted pattern ignoring its position.
func (r *potRow) shape() deephash.Sum {
	lo, hi, ok := r.span()
	var trimmed []bool
	if ok {
		trimmed = r.pots[lo : hi+1]
	}
	return aoc.Hash(&trimmed)
}

const (
	// maxPotGenerations bounds how long sumAt simulates before giving up
	// on the row settling into a glider.
	maxPotGenerations = 100_000
	// stableDeltas is how many equal consecutive sum deltas are accepted
	// as linear growth when the shape itself keeps changing.
	stableDeltas = 100
)

var errPotsUnsettled = errors.New("pot row did not settle")

// sumAt returns the pot sum at generation target. Once the potted pattern
// is the same as one generation earlier it only drifts, so the sum grows
// by a constant per generation and is extrapolated from there.
func (r *potRow) sumAt(rules *potRules, target int64) (int64, error) {
	if target < int64(r.generation) {
		return 0, fmt.Errorf("generation %d already passed (at %d)", target, r.generation)
	}
	prevSum, prevShape := r.sum(), r.shape()
	var prevDelta int64
	same := 0
	for int64(r.generation) < target {
		if r.generation >= maxPotGenerations {
			return 0, fmt.Errorf("%w after %d generations", errPotsUnsettled, r.generation)
		}
		r.step(rules)
		sum, shape := r.sum(), r.shape()
		delta := sum - prevSum
		if delta == prevDelta {
			same++
		} else {
			same = 0
		}
		if shape == prevShape || same >= stableDeltas {
			return sum + delta*(target-int64(r.generation)), nil
		}
		prevSum, prevShape, prevDelta = sum, shape, delta
	}
	return r.sum(), nil
}

func (s solver) pots() (*potRow, *potRules) {
	row, rules, err := parsePots(s.Lines())
	aoc.MustDo(err)
	return row, rules
}

/*
want=325

initial state: #..#.#..##......###...###

...## => #
..#.. => #
.#... => #
.#.#. => #
.#.## => #
.##.. => #
.#### => #
#.#.# => #
#.### => #
##.#. => #
##.## => #
###.. => #
###.# => #
####. => #
*/
func (s solver) D12p1() any {
	row, rules := s.pots()
	return aoc.MustGet(row.sumAt(rules, 20))
}

func (s solver) D12p2() any {
	row, rules := s.pots()
	sum := aoc.MustGet(row.sumAt(rules, 50_000_000_000))
	s.Debug("pots settled at generation", row.generation)
	return sum
}

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"aoc2018"
)

// stepGraph holds the "X must be finished before Y" requirements.
type stepGraph struct {
	steps      []byte // sorted
	prereqs    map[byte]int
	dependents map[byte][]byte
}

func parseStepGraph(lines []string) (*stepGraph, error) {
	g := &stepGraph{
		prereqs:    make(map[byte]int),
		dependents: make(map[byte][]byte),
	}
	seen := make(map[byte]bool)
	for _, l := range lines {
		// "Step C must be finished before step A can begin."
		f := aoc.Fields(l, func(r rune) bool { return !unicode.IsUpper(r) })
		if len(f) != 3 || len(f[1]) != 1 || len(f[2]) != 1 {
			return nil, fmt.Errorf("%w: requirement %q", aoc.ErrParse, l)
		}
		before, after := f[1][0], f[2][0]
		g.dependents[before] = append(g.dependents[before], after)
		g.prereqs[after]++
		for _, c := range []byte{before, after} {
			if !seen[c] {
				seen[c] = true
				g.steps = append(g.steps, c)
			}
		}
	}
	slices.Sort(g.steps)
	return g, nil
}

var errStepCycle = errors.New("requirements contain a cycle")

// run executes the steps with the given number of workers, where step c
// takes base+(c-'A'+1) seconds. Among available steps the alphabetically
// first starts first. It returns the order steps started in and the total
// time taken.
func (g *stepGraph) run(workers, base int) (order string, took int, err error) {
	pending := make(map[byte]int, len(g.prereqs))
	for k, v := range g.prereqs {
		pending[k] = v
	}
	ready := aoc.MinQueue[byte]()
	for _, c := range g.steps {
		if pending[c] == 0 {
			ready.PushValue(c, int(c))
		}
	}
	busy := aoc.MinQueue[byte]() // by finish time
	var sb strings.Builder
	finish := func(c byte) {
		for _, d := range g.dependents[c] {
			if pending[d]--; pending[d] == 0 {
				ready.PushValue(d, int(d))
			}
		}
	}
	now := 0
	for ready.Len() > 0 || busy.Len() > 0 {
		for busy.Len() < workers && ready.Len() > 0 {
			c := ready.Pop().V
			sb.WriteByte(c)
			busy.PushValue(c, now+base+int(c-'A'+1))
		}
		done := busy.Pop()
		now = done.P
		finish(done.V)
		for busy.Len() > 0 && busy.Peek().P == now {
			finish(busy.Pop().V)
		}
	}
	if sb.Len() != len(g.steps) {
		return "", 0, errStepCycle
	}
	return sb.String(), now, nil
}

/*
want=CABDFE

Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
*/
func (s solver) D7p1() any {
	g := aoc.MustGet(parseStepGraph(s.Lines()))
	order, _, err := g.run(1, 0)
	aoc.MustDo(err)
	return order
}

// want=15
func (s solver) D7p2() any {
	workers, base := 5, 60
	if s.SampleMode {
		workers, base = 2, 0
	}
	g := aoc.MustGet(parseStepGraph(s.Lines()))
	_, took, err := g.run(workers, base)
	aoc.MustDo(err)
	return took
}

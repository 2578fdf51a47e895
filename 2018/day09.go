package main

import (
	"fmt"

	"aoc2018"
)

// marbleGame is the circle of marbles. The current marble is the back of
// the deque; rotating by k moves the current position k steps
// counter-clockwise.
type marbleGame struct {
	circle  *aoc.Deque[int]
	scores  []int
	next    int // value of the next marble to place
	removed int // marbles kept by players rather than the circle
	// bestTerm is the largest single score increment so far.
	bestTerm int
}

func newMarbleGame(players, lastMarble int) *marbleGame {
	g := &marbleGame{
		circle: aoc.NewDeque[int](lastMarble + 1),
		scores: make([]int, players),
		next:   2,
	}
	g.circle.PushBack(0)
	g.circle.PushBack(1)
	return g
}

// place plays the next marble.
func (g *marbleGame) place() {
	m := g.next
	g.next++
	if m%23 != 0 {
		g.circle.Rotate(-1)
		g.circle.PushBack(m)
		return
	}
	g.circle.Rotate(7)
	taken, ok := g.circle.PopBack()
	if !ok {
		panic("marble circle is empty")
	}
	g.circle.Rotate(-1)
	// Both the scoring marble and the one taken leave play.
	g.removed += 2
	term := m + taken
	// Marble 1 was placed by the first player, so marble m is played by
	// player (m-1) mod P.
	g.scores[(m-1)%len(g.scores)] += term
	g.bestTerm = max(g.bestTerm, term)
}

func (g *marbleGame) highScore() int {
	best := 0
	for _, s := range g.scores {
		best = max(best, s)
	}
	return best
}

// marbleHighScore plays marbles up to and including lastMarble and returns
// the winning score.
func marbleHighScore(players, lastMarble int) int {
	g := newMarbleGame(players, lastMarble)
	for g.next <= lastMarble {
		g.place()
	}
	return g.highScore()
}

func parseMarbleGame(text string) (players, lastMarble int, err error) {
	if _, err := fmt.Sscanf(text, "%d players; last marble is worth %d points", &players, &lastMarble); err != nil {
		return 0, 0, fmt.Errorf("%w: marble game %q: %v", aoc.ErrParse, text, err)
	}
	if players < 1 || lastMarble < 1 {
		return 0, 0, fmt.Errorf("%w: marble game %q: need a player and a marble", aoc.ErrParse, text)
	}
	return players, lastMarble, nil
}

/*
want=8317

10 players; last marble is worth 1618 points
*/
func (s solver) D9p1() any {
	players, last, err := parseMarbleGame(s.Text())
	aoc.MustDo(err)
	return marbleHighScore(players, last)
}

func (s solver) D9p2() any {
	players, last, err := parseMarbleGame(s.Text())
	aoc.MustDo(err)
	return marbleHighScore(players, last*100)
}

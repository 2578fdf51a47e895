package main

import (
	"errors"
	"fmt"
	"slices"

	"aoc2018"
)

// turn is the choice a cart makes at its next intersection.
type turn int

const (
	turnLeft turn = iota
	goStraight
	turnRight
)

type cart struct {
	aoc.Path
	next    turn
	crashed bool
}

type tracks struct {
	grid    aoc.Grid[byte]
	carts   []*cart
	crashes []aoc.Pt
	tick    int
}

var (
	errNoCarts  = errors.New("no carts left")
	errOffTrack = errors.New("cart left the track")
	errCircling = errors.New("carts never meet")
)

// maxCartTicks bounds the simulation. Carts chasing each other around a
// loop at the same speed never collide.
const maxCartTicks = 1_000_000

// parseTracks reads the track layout. Carts are replaced by the straight
// piece of track they stand on.
func parseTracks(lines []string) (*tracks, error) {
	t := &tracks{}
	var bad error
	t.grid = aoc.ParseGrid(lines, ' ', func(p aoc.Pt, b byte) byte {
		switch b {
		case '|', '-', '/', '\\', '+', ' ':
			return b
		}
		d, ok := aoc.ParseDirection(b)
		if !ok {
			if bad == nil {
				bad = fmt.Errorf("%w: unknown track %q at %v", aoc.ErrParse, b, p)
			}
			return ' '
		}
		t.carts = append(t.carts, &cart{Path: aoc.Path{Pt: p, Dir: d}})
		if d.Vertical() {
			return '|'
		}
		return '-'
	})
	if bad != nil {
		return nil, bad
	}
	return t, nil
}

// steer points c along the track piece it just moved onto.
func (c *cart) steer(track byte) error {
	switch track {
	case '|':
		if !c.Dir.Vertical() {
			return fmt.Errorf("%w: cart heading %v on %q at %v", errOffTrack, c.Dir, track, c.Pt)
		}
	case '-':
		if c.Dir.Vertical() {
			return fmt.Errorf("%w: cart heading %v on %q at %v", errOffTrack, c.Dir, track, c.Pt)
		}
	case '/':
		// Up<->Right, Down<->Left
		c.Dir = c.Dir.Turn(c.Dir.Vertical())
	case '\\':
		// Up<->Left, Down<->Right
		c.Dir = c.Dir.Turn(!c.Dir.Vertical())
	case '+':
		switch c.next {
		case turnLeft:
			c.Dir = c.Dir.Turn(false)
		case turnRight:
			c.Dir = c.Dir.Turn(true)
		}
		c.next = (c.next + 1) % 3
	default:
		return fmt.Errorf("%w: cart on empty cell %v", errOffTrack, c.Pt)
	}
	return nil
}

// step runs one tick. Carts move in reading order of their positions at the
// start of the tick; a cart moving onto another live cart crashes with it,
// whether or not that one has moved yet. Crashed carts are removed at the
// end of the tick.
func (t *tracks) step() error {
	t.tick++
	slices.SortFunc(t.carts, func(a, b *cart) int {
		return aoc.ReadingOrder(a.Pt, b.Pt)
	})
	for _, c := range t.carts {
		if c.crashed {
			continue
		}
		p, ok := t.grid.Move(c.Path)
		if !ok {
			return fmt.Errorf("%w: cart at %v heading %v", errOffTrack, c.Pt, c.Dir)
		}
		c.Path = p
		if err := c.steer(t.grid.At(c.Pt)); err != nil {
			return err
		}
		for _, o := range t.carts {
			if o != c && !o.crashed && o.Pt == c.Pt {
				c.crashed, o.crashed = true, true
				t.crashes = append(t.crashes, c.Pt)
				break
			}
		}
	}
	t.carts = slices.DeleteFunc(t.carts, func(c *cart) bool { return c.crashed })
	return nil
}

// firstCrash runs until some carts collide.
func (t *tracks) firstCrash() (aoc.Pt, error) {
	for len(t.crashes) == 0 {
		if len(t.carts) < 2 {
			return aoc.Pt{}, fmt.Errorf("%w: %d cart(s) cannot crash", errNoCarts, len(t.carts))
		}
		if t.tick >= maxCartTicks {
			return aoc.Pt{}, fmt.Errorf("%w: no crash in %d ticks", errCircling, t.tick)
		}
		if err := t.step(); err != nil {
			return aoc.Pt{}, err
		}
	}
	return t.crashes[0], nil
}

// lastCart runs until a single cart remains.
func (t *tracks) lastCart() (aoc.Pt, error) {
	for len(t.carts) > 1 {
		if t.tick >= maxCartTicks {
			return aoc.Pt{}, fmt.Errorf("%w: %d carts left after %d ticks", errCircling, len(t.carts), t.tick)
		}
		if err := t.step(); err != nil {
			return aoc.Pt{}, err
		}
	}
	if len(t.carts) == 0 {
		return aoc.Pt{}, errNoCarts
	}
	return t.carts[0].Pt, nil
}

func (s solver) tracks() *tracks {
	return aoc.MustGet(parseTracks(s.RawLines()))
}

/*
want=7,3

/->-\
|   |  /----\
| /-+--+-\  |
| | |  | v  |
\-+-/  \-+--/
  \------/
*/
func (s solver) D13p1() any {
	return aoc.MustGet(s.tracks().firstCrash())
}

/*
want=6,4

/>-<\
|   |
| /<+-\
| | | v
\>+</ |
  |   ^
  \<->/
*/
func (s solver) D13p2() any {
	t := s.tracks()
	at := aoc.MustGet(t.lastCart())
	s.Debugf("crashes by tick %d: %v", t.tick, t.crashes)
	return at
}

package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2018"
)

const (
	crashTracks = `/->-\
|   |  /----\
| /-+--+-\  |
| | |  | v  |
\-+-/  \-+--/
  \------/
`
	lastCartTracks = `/>-<\
|   |
| /<+-\
| | | v
\>+</ |
  |   ^
  \<->/
`
)

func mustTracks(t *testing.T, lines []string) *tracks {
	t.Helper()
	tr, err := parseTracks(lines)
	require.NoError(t, err)
	return tr
}

func TestParseTracks(t *testing.T) {
	tr := mustTracks(t, aoc.RawLines(crashTracks))
	require.Len(t, tr.carts, 2)
	assert.Equal(t, aoc.Path{Pt: aoc.Pt{X: 2, Y: 0}, Dir: aoc.Right}, tr.carts[0].Path)
	assert.Equal(t, aoc.Path{Pt: aoc.Pt{X: 9, Y: 3}, Dir: aoc.Down}, tr.carts[1].Path)
	assert.Equal(t, byte('-'), tr.grid.At(aoc.Pt{X: 2, Y: 0}))
	assert.Equal(t, byte('|'), tr.grid.At(aoc.Pt{X: 9, Y: 3}))
	// Short lines are padded with empty cells.
	assert.Equal(t, aoc.Pt{X: 13, Y: 6}, tr.grid.Size())
	assert.Equal(t, byte(' '), tr.grid.At(aoc.Pt{X: 12, Y: 5}))

	_, err := parseTracks([]string{"-x-"})
	assert.ErrorIs(t, err, aoc.ErrParse)
}

func TestFirstCrash(t *testing.T) {
	tr := mustTracks(t, aoc.RawLines(crashTracks))
	at, err := tr.firstCrash()
	require.NoError(t, err)
	assert.Equal(t, aoc.Pt{X: 7, Y: 3}, at)
	assert.Equal(t, 14, tr.tick)
}

func TestLastCart(t *testing.T) {
	tr := mustTracks(t, aoc.RawLines(lastCartTracks))
	initial := len(tr.carts)
	require.Equal(t, 9, initial)

	at, err := tr.lastCart()
	require.NoError(t, err)
	assert.Equal(t, aoc.Pt{X: 6, Y: 4}, at)
	assert.Len(t, tr.crashes, 4)
	assert.Equal(t, initial, len(tr.carts)+2*len(tr.crashes), "every crash removes two carts")

	// Both carts of the first layout crash into each other.
	tr = mustTracks(t, aoc.RawLines(crashTracks))
	_, err = tr.lastCart()
	assert.ErrorIs(t, err, errNoCarts)
}

func TestCartMoveOrder(t *testing.T) {
	// The left cart moves first and runs into the right one before it can
	// get away.
	tr := mustTracks(t, []string{"->>--"})
	slices.Reverse(tr.carts)
	require.NoError(t, tr.step())
	assert.Equal(t, []aoc.Pt{{X: 2, Y: 0}}, tr.crashes)
	assert.Empty(t, tr.carts)

	// Rows come before columns.
	tr = mustTracks(t, []string{"|", "v", "v", "|"})
	require.NoError(t, tr.step())
	assert.Equal(t, []aoc.Pt{{X: 0, Y: 2}}, tr.crashes)
}

func TestCartIntersections(t *testing.T) {
	c := &cart{Path: aoc.Path{Dir: aoc.Up}}
	for _, want := range []aoc.Direction{aoc.Left, aoc.Left, aoc.Up, aoc.Left, aoc.Left, aoc.Up} {
		require.NoError(t, c.steer('+'))
		assert.Equal(t, want, c.Dir)
	}

	corners := []struct {
		track   byte
		in, out aoc.Direction
	}{
		{'/', aoc.Up, aoc.Right},
		{'/', aoc.Right, aoc.Up},
		{'/', aoc.Down, aoc.Left},
		{'/', aoc.Left, aoc.Down},
		{'\\', aoc.Up, aoc.Left},
		{'\\', aoc.Left, aoc.Up},
		{'\\', aoc.Down, aoc.Right},
		{'\\', aoc.Right, aoc.Down},
	}
	for _, tt := range corners {
		c := &cart{Path: aoc.Path{Dir: tt.in}}
		require.NoError(t, c.steer(tt.track))
		assert.Equal(t, tt.out, c.Dir, "%v onto %q", tt.in, tt.track)
	}
}

func TestCartOffTrack(t *testing.T) {
	for _, lines := range [][]string{
		{"->"},     // off the grid
		{"> -"},    // onto an empty cell
		{"v", "-"}, // across a straight piece
	} {
		tr := mustTracks(t, lines)
		assert.ErrorIs(t, tr.step(), errOffTrack, "%q", lines)
	}

	tr := mustTracks(t, []string{"->-"})
	_, err := tr.firstCrash()
	assert.ErrorIs(t, err, errNoCarts)
}

// Two carts going clockwise on opposite sides of a loop keep their
// distance forever.
var circlingTracks = []string{
	`/>-\`,
	`|  |`,
	`\-</`,
}

func TestCartsCircling(t *testing.T) {
	tr := mustTracks(t, circlingTracks)
	_, err := tr.firstCrash()
	assert.ErrorIs(t, err, errCircling)
	assert.Equal(t, maxCartTicks, tr.tick)
	assert.Empty(t, tr.crashes)

	tr = mustTracks(t, circlingTracks)
	_, err = tr.lastCart()
	assert.ErrorIs(t, err, errCircling)
	assert.Len(t, tr.carts, 2)
}

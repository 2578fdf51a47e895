package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2018"
)

func TestCellPower(t *testing.T) {
	tests := []struct {
		serial int
		at     aoc.Pt
		want   int
	}{
		{8, aoc.Pt{X: 3, Y: 5}, 4},
		{57, aoc.Pt{X: 122, Y: 79}, -5},
		{39, aoc.Pt{X: 217, Y: 196}, 0},
		{71, aoc.Pt{X: 101, Y: 153}, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cellPower(tt.serial, tt.at), "serial %d at %v", tt.serial, tt.at)
	}
}

func TestBestPowerSquare(t *testing.T) {
	tests := []struct {
		serial  int
		three   powerSquare
		anySize powerSquare
	}{
		{
			serial:  18,
			three:   powerSquare{at: aoc.Pt{X: 33, Y: 45}, size: 3, power: 29},
			anySize: powerSquare{at: aoc.Pt{X: 90, Y: 269}, size: 16, power: 113},
		},
		{
			serial:  42,
			three:   powerSquare{at: aoc.Pt{X: 21, Y: 61}, size: 3, power: 30},
			anySize: powerSquare{at: aoc.Pt{X: 232, Y: 251}, size: 12, power: 119},
		},
	}
	for _, tt := range tests {
		g := powerGrid(tt.serial)
		assert.Equal(t, tt.three, g.best(3, 3), "serial %d", tt.serial)
		if testing.Short() {
			continue
		}
		assert.Equal(t, tt.anySize, g.best(1, powerGridSize), "serial %d", tt.serial)
	}
}

func naiveSquare(power func(aoc.Pt) int, x, y, size int) int {
	sum := 0
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			sum += power(aoc.Pt{X: x + dx, Y: y + dy})
		}
	}
	return sum
}

func TestSummedAreaMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(2018))
	for round := 0; round < 20; round++ {
		w, h := 1+rng.Intn(20), 1+rng.Intn(20)
		cells := aoc.MakeGrid[int](w+1, h+1)
		for y := 1; y <= h; y++ {
			for x := 1; x <= w; x++ {
				cells[y][x] = rng.Intn(19) - 9
			}
		}
		power := func(p aoc.Pt) int { return cells.At(p) }
		sa := newSummedArea(w, h, power)

		maxSize := min(w, h, 10)
		want := powerSquare{power: -1 << 62}
		for size := 1; size <= maxSize; size++ {
			for y := 1; y+size-1 <= h; y++ {
				for x := 1; x+size-1 <= w; x++ {
					p := naiveSquare(power, x, y, size)
					require.Equal(t, p, sa.square(x, y, size), "%dx%d square %d at %d,%d", w, h, size, x, y)
					if p > want.power {
						want = powerSquare{at: aoc.Pt{X: x, Y: y}, size: size, power: p}
					}
				}
			}
		}
		assert.Equal(t, want, sa.best(1, maxSize), "%dx%d grid", w, h)
	}
}

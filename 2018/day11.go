package main

import (
	"fmt"
	"math"

	"aoc2018"
)

const powerGridSize = 300

// cellPower is the power level of the fuel cell at p for the given grid
// serial number.
func cellPower(serial int, p aoc.Pt) int {
	rack := p.X + 10
	level := (rack*p.Y + serial) * rack
	return (level/100)%10 - 5
}

// summedArea is a summed-area table over a w×h grid with 1-based
// coordinates: table[y][x] is the sum of power over [1,x]×[1,y]. Row and
// column 0 are zero.
type summedArea struct {
	w, h  int
	table aoc.Grid[int]
}

func newSummedArea(w, h int, power func(aoc.Pt) int) *summedArea {
	t := aoc.MakeGrid[int](w+1, h+1)
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			t[y][x] = power(aoc.Pt{X: x, Y: y}) + t[y][x-1] + t[y-1][x] - t[y-1][x-1]
		}
	}
	return &summedArea{w: w, h: h, table: t}
}

// square returns the total power of the size×size square whose top-left
// cell is (x,y).
func (s *summedArea) square(x, y, size int) int {
	t := s.table
	x1, y1 := x+size-1, y+size-1
	return t[y1][x1] - t[y1][x-1] - t[y-1][x1] + t[y-1][x-1]
}

type powerSquare struct {
	at    aoc.Pt
	size  int
	power int
}

// best returns the most powerful square among sizes [minSize,maxSize].
// Squares are scanned by size, then row, then column; the first maximum
// wins.
func (s *summedArea) best(minSize, maxSize int) powerSquare {
	best := powerSquare{power: math.MinInt}
	for size := minSize; size <= maxSize; size++ {
		for y := 1; y+size-1 <= s.h; y++ {
			for x := 1; x+size-1 <= s.w; x++ {
				if p := s.square(x, y, size); p > best.power {
					best = powerSquare{at: aoc.Pt{X: x, Y: y}, size: size, power: p}
				}
			}
		}
	}
	return best
}

func powerGrid(serial int) *summedArea {
	return newSummedArea(powerGridSize, powerGridSize, func(p aoc.Pt) int {
		return cellPower(serial, p)
	})
}

func (s solver) gridSerial() int {
	v, err := aoc.IntsN(s.Text(), 1, aoc.IsSpace)
	if err != nil {
		aoc.MustDo(fmt.Errorf("grid serial: %w", err))
	}
	return v[0]
}

/*
want=33,45

18
*/
func (s solver) D11p1() any {
	return powerGrid(s.gridSerial()).best(3, 3).at
}

// want=90,269,16
func (s solver) D11p2() any {
	b := powerGrid(s.gridSerial()).best(1, powerGridSize)
	return fmt.Sprintf("%v,%d", b.at, b.size)
}

package aoc

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a grid from lines, converting each byte with f. Short
// lines are padded with pad so the grid is rectangular.
func ParseGrid[T any](lines []string, pad byte, f func(p Pt, b byte) T) Grid[T] {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	g := MakeGrid[T](width, len(lines))
	for y, l := range lines {
		for x := 0; x < width; x++ {
			b := pad
			if x < len(l) {
				b = l[x]
			}
			g[y][x] = f(Pt{x, y}, b)
		}
	}
	return g
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*T) deephash.Sum

// Hash returns the deephash digest of *v. Hashers are cached per type.
func Hash[T any](v *T) deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(v)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[T]()
		hashers[rt] = h
	}
	return h.(func(*T) deephash.Sum)(v)
}

func (g Grid[T]) Hash() deephash.Sum {
	return Hash(&g)
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false if the step
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if _, ok := g.AtOk(p.Pt); !ok {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	panic("bad")
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Delta is the unit step for d, with y growing downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(b byte) (Direction, bool) {
	switch b {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

// ReadingOrder compares points top to bottom, then left to right.
func ReadingOrder[T constraints.Signed](a, b Pt2[T]) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Rect is an axis-aligned rectangle. Max is exclusive.
type Rect struct {
	Min, Max Pt
}

// RectOf returns the rectangle at p with the given width and height.
func RectOf(p Pt, w, h int) Rect {
	return Rect{Min: p, Max: Pt{p.X + w, p.Y + h}}
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r Rect) Dx() int { return r.Max.X - r.Min.X }
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Area returns the number of points in r as an int64, since bounding boxes
// of fast-moving points can be huge.
func (r Rect) Area() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.Dx()) * int64(r.Dy())
}

func (r Rect) Contains(p Pt) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union returns the smallest rectangle containing r and p.
func (r Rect) Union(p Pt) Rect {
	if r.Empty() {
		return Rect{Min: p, Max: Pt{p.X + 1, p.Y + 1}}
	}
	r.Min.X = min(r.Min.X, p.X)
	r.Min.Y = min(r.Min.Y, p.Y)
	r.Max.X = max(r.Max.X, p.X+1)
	r.Max.Y = max(r.Max.Y, p.Y+1)
	return r
}

// Intersect returns the overlap of r and s, which may be empty.
func (r Rect) Intersect(s Rect) Rect {
	r.Min.X = max(r.Min.X, s.Min.X)
	r.Min.Y = max(r.Min.Y, s.Min.Y)
	r.Max.X = min(r.Max.X, s.Max.X)
	r.Max.Y = min(r.Max.Y, s.Max.Y)
	if r.Empty() {
		return Rect{}
	}
	return r
}

// OnEdge reports whether p is one of the outermost points of r.
func (r Rect) OnEdge(p Pt) bool {
	return r.Contains(p) && (p.X == r.Min.X || p.Y == r.Min.Y || p.X == r.Max.X-1 || p.Y == r.Max.Y-1)
}

// ForPoints calls f for each point of r in reading order.
func (r Rect) ForPoints(f func(Pt) (keepGoing bool)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !f(Pt{x, y}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle containing every point.
func BoundingBox(pts ...Pt) Rect {
	var r Rect
	for _, p := range pts {
		r = r.Union(p)
	}
	return r
}

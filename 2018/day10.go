package main

import (
	"fmt"
	"math"
	"strings"

	"aoc2018"
)

type light struct {
	pos, vel aoc.Pt
}

// parseLight parses "position=< 9,  1> velocity=< 0,  2>".
func parseLight(line string) (light, error) {
	v, err := aoc.IntsN(line, 4, aoc.NotSigned)
	if err != nil {
		return light{}, fmt.Errorf("light: %w", err)
	}
	return light{pos: aoc.Pt{X: v[0], Y: v[1]}, vel: aoc.Pt{X: v[2], Y: v[3]}}, nil
}

type sky struct {
	lights []light
	ticks  int
}

func parseSky(lines []string) (*sky, error) {
	s := &sky{lights: make([]light, 0, len(lines))}
	for _, l := range lines {
		li, err := parseLight(l)
		if err != nil {
			return nil, err
		}
		s.lights = append(s.lights, li)
	}
	return s, nil
}

// step advances every light by dir times its velocity.
func (s *sky) step(dir int) {
	s.ticks += dir
	for i := range s.lights {
		l := &s.lights[i]
		l.pos.X += dir * l.vel.X
		l.pos.Y += dir * l.vel.Y
	}
}

// drifting reports whether the lights move relative to each other. If they
// do not, the bounding box never changes.
func (s *sky) drifting() bool {
	for _, l := range s.lights[min(1, len(s.lights)):] {
		if l.vel != s.lights[0].vel {
			return true
		}
	}
	return false
}

func (s *sky) bounds() aoc.Rect {
	var r aoc.Rect
	for _, l := range s.lights {
		r = r.Union(l.pos)
	}
	return r
}

// converge advances the sky to the tick with the smallest bounding box,
// which is the one right before the box first grows again.
func (s *sky) converge() {
	if !s.drifting() {
		return
	}
	prev := int64(math.MaxInt64)
	for {
		area := s.bounds().Area()
		if area > prev {
			s.step(-1)
			return
		}
		prev = area
		s.step(1)
	}
}

// render draws the lights as rows of '#' and '.'.
func (s *sky) render() string {
	b := s.bounds()
	lit := make(map[aoc.Pt]bool, len(s.lights))
	for _, l := range s.lights {
		lit[l.pos] = true
	}
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb.WriteByte('\n')
		for x := b.Min.X; x < b.Max.X; x++ {
			if lit[aoc.Pt{X: x, Y: y}] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (s solver) sky() *sky {
	sk := aoc.MustGet(parseSky(s.Lines()))
	sk.converge()
	return sk
}

// D10p1 returns the message spelled by the lights. It spans several lines,
// so it has no sample.
func (s solver) D10p1() any {
	return s.sky().render()
}

/*
want=3

position=< 9,  1> velocity=< 0,  2>
position=< 7,  0> velocity=<-1,  0>
position=< 3, -2> velocity=<-1,  1>
position=< 6, 10> velocity=<-2, -1>
position=< 2, -4> velocity=< 2,  2>
position=<-6, 10> velocity=< 2, -2>
position=< 1,  8> velocity=< 1, -1>
position=< 1,  7> velocity=< 1,  0>
position=<-3, 11> velocity=< 1, -2>
position=< 7,  6> velocity=<-1, -1>
position=<-2,  3> velocity=< 1,  0>
position=<-4,  3> velocity=< 2,  0>
position=<10, -3> velocity=<-1,  1>
position=< 5, 11> velocity=< 1, -2>
position=< 4,  7> velocity=< 0, -1>
position=< 8, -2> velocity=< 0,  1>
position=<15,  0> velocity=<-2,  0>
position=< 1,  6> velocity=< 1,  0>
position=< 8,  9> velocity=< 0, -1>
position=< 3,  3> velocity=<-1,  1>
position=< 0,  5> velocity=< 0, -1>
position=<-2,  2> velocity=< 2,  0>
position=< 5, -2> velocity=< 1,  2>
position=< 1,  4> velocity=< 2,  1>
position=<-2,  7> velocity=< 2, -2>
position=< 3,  6> velocity=<-1, -1>
position=< 5,  0> velocity=< 1,  0>
position=<-6,  0> velocity=< 2,  0>
position=< 5,  9> velocity=< 1, -2>
position=<14,  7> velocity=<-2,  0>
position=<-3,  6> velocity=< 2, -1>
*/
func (s solver) D10p2() any {
	sk := s.sky()
	s.Debugf("converged after %d ticks, bounds %v", sk.ticks, sk.bounds())
	return sk.ticks
}

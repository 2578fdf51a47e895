package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2018"
)

const skyLights = `
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
`

func TestSkyConverge(t *testing.T) {
	sk, err := parseSky(aoc.Lines(skyLights))
	require.NoError(t, err)
	require.Len(t, sk.lights, 31)
	assert.Equal(t, light{pos: aoc.Pt{X: 9, Y: 1}, vel: aoc.Pt{X: 0, Y: 2}}, sk.lights[0])
	assert.Equal(t, int64(352), sk.bounds().Area())

	sk.converge()
	assert.Equal(t, 3, sk.ticks)
	assert.Equal(t, int64(80), sk.bounds().Area())

	want := strings.Join([]string{
		"",
		"#...#..###",
		"#...#...#.",
		"#...#...#.",
		"#####...#.",
		"#...#...#.",
		"#...#...#.",
		"#...#...#.",
		"#...#..###",
	}, "\n")
	assert.Equal(t, want, sk.render())
}

func TestSkyNotDrifting(t *testing.T) {
	sk, err := parseSky([]string{
		"position=< 1,  1> velocity=< 3, -1>",
		"position=< 4,  2> velocity=< 3, -1>",
	})
	require.NoError(t, err)
	sk.converge()
	assert.Equal(t, 0, sk.ticks)
}

func TestParseLightError(t *testing.T) {
	_, err := parseLight("position=< 1,  1> velocity=< 3>")
	assert.ErrorIs(t, err, aoc.ErrParse)
}

// Command 2018 solves the Advent of Code 2018 puzzles, days 1 through 13.
//
// Run from the repository root:
//
//	go run ./2018 -day 9
//
// Inputs for days 9 and 11 are embedded from input/. Puzzle inputs differ
// per account, so the other days download theirs on first use with the
// session cookie in ~/keys/aoc.session and cache it under 2018/N.input.
// Dropping a file at input/N.txt embeds it on the next build instead.
package main

import (
	"embed"

	"aoc2018"
)

func main() {
	aoc.Run(2018, source, &solver{})
}

// source carries the solver files, whose doc comments hold the samples, and
// the puzzle inputs checked in under input/.
//
//go:embed day??.go input
var source embed.FS

type solver struct {
	*aoc.Puzzle
}

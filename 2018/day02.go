package main

import (
	"errors"

	"aoc2018"
)

// letterRepeats reports whether id has some letter exactly twice and some
// letter exactly three times.
func letterRepeats(id string) (two, three bool) {
	var counts [256]int
	for i := 0; i < len(id); i++ {
		counts[id[i]]++
	}
	for _, c := range counts {
		switch c {
		case 2:
			two = true
		case 3:
			three = true
		}
	}
	return two, three
}

func checksum(ids []string) int {
	var twos, threes int
	for _, id := range ids {
		two, three := letterRepeats(id)
		if two {
			twos++
		}
		if three {
			threes++
		}
	}
	return twos * threes
}

// commonLetters returns the letters a and b share by position if they
// differ in exactly one position.
func commonLetters(a, b string) (string, bool) {
	if len(a) != len(b) {
		return "", false
	}
	diff := -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if diff != -1 {
			return "", false
		}
		diff = i
	}
	if diff == -1 {
		return "", false
	}
	return a[:diff] + a[diff+1:], true
}

var errNoBoxPair = errors.New("no pair of ids differs in exactly one position")

func findBoxes(ids []string) (string, error) {
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if common, ok := commonLetters(a, b); ok {
				return common, nil
			}
		}
	}
	return "", errNoBoxPair
}

/*
want=12

abcdef
bababc
abbcde
abcccd
aabcdd
abcdee
ababab
*/
func (s solver) D2p1() any {
	return checksum(s.Lines())
}

/*
want=fgij

abcde
fghij
klmno
pqrst
fguij
axcye
wvxyz
*/
func (s solver) D2p2() any {
	return aoc.MustGet(findBoxes(s.Lines()))
}

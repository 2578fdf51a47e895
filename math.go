package aoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

// ErrParse is wrapped by the errors returned when an input line does not
// have the expected shape.
var ErrParse = errors.New("parse error")

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string. It panics on malformed input.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields splits line around each run of runes satisfying sep. Empty fields
// are dropped.
func Fields(line string, sep func(rune) bool) []string {
	return strings.FieldsFunc(line, sep)
}

// ParseInts splits line with sep and parses every field as an int.
func ParseInts(line string, sep func(rune) bool) ([]int, error) {
	fields := Fields(line, sep)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %q: %v", ErrParse, line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// IntsN is ParseInts, additionally requiring exactly n fields.
func IntsN(line string, n int, sep func(rune) bool) ([]int, error) {
	v, err := ParseInts(line, sep)
	if err != nil {
		return nil, err
	}
	if len(v) != n {
		return nil, fmt.Errorf("%w: line %q: got %d numbers, want %d", ErrParse, line, len(v), n)
	}
	return v, nil
}

// NotDigit reports whether r is not an ASCII digit. It is meant as a
// separator for Fields and ParseInts.
func NotDigit(r rune) bool {
	return r < '0' || r > '9'
}

// NotSigned is like NotDigit but keeps minus signs, for signed fields.
func NotSigned(r rune) bool {
	return NotDigit(r) && r != '-'
}

// IsSpace separates on whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

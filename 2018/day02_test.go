package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterRepeats(t *testing.T) {
	tests := []struct {
		id         string
		two, three bool
	}{
		{"abcdef", false, false},
		{"bababc", true, true},
		{"abbcde", true, false},
		{"abcccd", false, true},
		{"aabcdd", true, false},
		{"ababab", false, true},
	}
	for _, tt := range tests {
		two, three := letterRepeats(tt.id)
		assert.Equal(t, tt.two, two, "%s twos", tt.id)
		assert.Equal(t, tt.three, three, "%s threes", tt.id)
	}
}

func TestCommonLetters(t *testing.T) {
	got, ok := commonLetters("fghij", "fguij")
	require.True(t, ok)
	assert.Equal(t, "fgij", got)

	_, ok = commonLetters("abcde", "axcye")
	assert.False(t, ok, "two differences")
	_, ok = commonLetters("abcde", "abcde")
	assert.False(t, ok, "identical ids")
	_, ok = commonLetters("abc", "abcd")
	assert.False(t, ok, "different lengths")
}

func TestFindBoxesNone(t *testing.T) {
	_, err := findBoxes([]string{"abc", "xyz"})
	assert.ErrorIs(t, err, errNoBoxPair)
}

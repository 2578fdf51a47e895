package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2018"
)

var stepRequirements = []string{
	"Step C must be finished before step A can begin.",
	"Step C must be finished before step F can begin.",
	"Step A must be finished before step B can begin.",
	"Step A must be finished before step D can begin.",
	"Step B must be finished before step E can begin.",
	"Step D must be finished before step E can begin.",
	"Step F must be finished before step E can begin.",
}

func TestStepOrder(t *testing.T) {
	g, err := parseStepGraph(stepRequirements)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABCDEF"), g.steps)

	order, took, err := g.run(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "CABDFE", order)
	// One worker and no base time: A..F take 1+2+...+6.
	assert.Equal(t, 21, took)
}

func TestStepSchedule(t *testing.T) {
	g, err := parseStepGraph(stepRequirements)
	require.NoError(t, err)
	order, took, err := g.run(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "CAFBDE", order)
	assert.Equal(t, 15, took)
}

func TestStepErrors(t *testing.T) {
	_, err := parseStepGraph([]string{"Step C must be finished."})
	assert.ErrorIs(t, err, aoc.ErrParse)

	g, err := parseStepGraph([]string{
		"Step A must be finished before step B can begin.",
		"Step B must be finished before step A can begin.",
	})
	require.NoError(t, err)
	_, _, err = g.run(1, 0)
	assert.ErrorIs(t, err, errStepCycle)
}

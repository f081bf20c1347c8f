package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTable(t *testing.T) {
	tests := []struct {
		rows     int
		expected int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}

	for _, tt := range tests {
		var s ScoreTracker
		assert.Equal(t, tt.expected, s.ApplyClear(tt.rows))
		assert.Equal(t, tt.expected, s.Score())
		assert.Equal(t, tt.rows, s.Lines())
	}
}

func TestScoreAccumulates(t *testing.T) {
	var s ScoreTracker
	s.ApplyClear(1)
	s.ApplyClear(4)
	s.ApplyClear(0)

	assert.Equal(t, 900, s.Score())
	assert.Equal(t, 5, s.Lines())

	s.Reset()
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Lines())
}

func TestScoreRejectsImpossibleClears(t *testing.T) {
	var s ScoreTracker
	assert.Panics(t, func() { s.ApplyClear(5) })
	assert.Panics(t, func() { s.ApplyClear(-1) })
	assert.Zero(t, s.Score())
}

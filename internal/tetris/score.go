package tetris

import "fmt"

// lineScores maps rows cleared by a single lock to points awarded.
var lineScores = [...]int{0, 100, 300, 500, 800}

// MaxClear is the most rows a single lock can clear.
const MaxClear = len(lineScores) - 1

// ScoreTracker accumulates points and cleared lines.
type ScoreTracker struct {
	score int
	lines int
}

// PointsFor returns the points awarded for clearing rows at once.
// Panics if rows is outside [0, MaxClear]: no piece spans more than four rows.
func PointsFor(rows int) int {
	if rows < 0 || rows > MaxClear {
		panic(fmt.Sprintf("tetris: cannot score %d cleared rows", rows))
	}
	return lineScores[rows]
}

// ApplyClear records a lock that cleared rows and returns the points added.
func (s *ScoreTracker) ApplyClear(rows int) int {
	pts := PointsFor(rows)
	s.score += pts
	s.lines += rows
	return pts
}

// Score returns the accumulated points.
func (s *ScoreTracker) Score() int { return s.score }

// Lines returns the total rows cleared.
func (s *ScoreTracker) Lines() int { return s.lines }

// Reset zeroes the tracker.
func (s *ScoreTracker) Reset() {
	s.score = 0
	s.lines = 0
}

package stats

import (
	"math"

	"github.com/verte-zerg/aetheris/internal/model"
)

// Weights applied to counters when computing score and activity magnitude.
const (
	QuizScoreDivisor     = 10.0
	MinutesDebatedWeight = 5.0
	NodesExploredWeight  = 10.0
)

// LevelBase scales the level curve: level n starts at LevelBase*(n-1)^2 points.
const LevelBase = 10.0

type titleBand struct {
	minLevel int
	title    string
}

// Ordered from highest to lowest.
var titleBands = []titleBand{
	{minLevel: 50, title: "Luminary"},
	{minLevel: 20, title: "Sage"},
	{minLevel: 10, title: "Adept"},
	{minLevel: 5, title: "Scholar"},
	{minLevel: 3, title: "Apprentice"},
	{minLevel: 1, title: "Novice"},
}

// weighted combines the three scored counters.
func weighted(quizScore, minutesDebated, nodesExplored float64) float64 {
	return quizScore/QuizScoreDivisor + minutesDebated*MinutesDebatedWeight + nodesExplored*NodesExploredWeight
}

// Score returns the cumulative weighted score of s.
func Score(s model.UserStats) float64 {
	return weighted(
		float64(nonNegative(s.QuizScore)),
		float64(nonNegative(s.MinutesDebated)),
		float64(nonNegative(s.NodesExplored)),
	)
}

// LevelForScore maps a score to a level, starting at 1.
func LevelForScore(score float64) int {
	if score <= 0 || math.IsNaN(score) {
		return 1
	}
	return int(math.Floor(math.Sqrt(score/LevelBase))) + 1
}

// LevelThreshold returns the score at which level starts.
func LevelThreshold(level int) float64 {
	if level <= 1 {
		return 0
	}
	n := float64(level - 1)
	return LevelBase * n * n
}

// TitleForLevel returns the title for a level.
func TitleForLevel(level int) string {
	for _, band := range titleBands {
		if level >= band.minLevel {
			return band.title
		}
	}
	return titleBands[len(titleBands)-1].title
}

// CalculateLevel returns s with Level and Title derived from its score.
func CalculateLevel(s model.UserStats) model.UserStats {
	s.Level = LevelForScore(Score(s))
	s.Title = TitleForLevel(s.Level)
	return s
}

// LevelProgress reports how far score is into its current level and the span of that level.
func LevelProgress(score float64) (into, span float64) {
	level := LevelForScore(score)
	start := LevelThreshold(level)
	span = LevelThreshold(level+1) - start
	if score <= 0 {
		return 0, span
	}
	return score - start, span
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

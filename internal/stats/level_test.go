package stats

import (
	"testing"

	"github.com/verte-zerg/aetheris/internal/model"
)

func TestLevelForScore(t *testing.T) {
	cases := []struct {
		score float64
		level int
	}{
		{-5, 1},
		{0, 1},
		{9.9, 1},
		{10, 2},
		{39, 2},
		{40, 3},
		{90, 4},
		{810, 10},
	}
	for _, tc := range cases {
		if got := LevelForScore(tc.score); got != tc.level {
			t.Fatalf("LevelForScore(%v) = %d, expected %d", tc.score, got, tc.level)
		}
	}
}

func TestTitleForLevel(t *testing.T) {
	cases := map[int]string{
		0:  "Novice",
		1:  "Novice",
		3:  "Apprentice",
		5:  "Scholar",
		12: "Adept",
		20: "Sage",
		75: "Luminary",
	}
	for level, title := range cases {
		if got := TitleForLevel(level); got != title {
			t.Fatalf("TitleForLevel(%d) = %q, expected %q", level, got, title)
		}
	}
}

func TestScoreWeights(t *testing.T) {
	s := model.UserStats{QuizScore: 55, MinutesDebated: 2, NodesExplored: 3, SessionsCompleted: 100}
	if got := Score(s); got != 5.5+10+30 {
		t.Fatalf("unexpected score %v", got)
	}
}

func TestLevelProgress(t *testing.T) {
	into, span := LevelProgress(25)
	if into != 15 || span != 30 {
		t.Fatalf("expected 15/30, got %v/%v", into, span)
	}
	into, span = LevelProgress(0)
	if into != 0 || span != 10 {
		t.Fatalf("expected 0/10, got %v/%v", into, span)
	}
}

package stats

import (
	"testing"

	"github.com/verte-zerg/aetheris/internal/model"
)

func TestTopDays(t *testing.T) {
	weekly := []model.ActivityPoint{
		{Day: "Sun", Value: 3},
		{Day: "Tue", Value: 8},
		{Day: "Mon", Value: 3},
		{Day: "Wed", Value: 0},
	}
	top := TopDays(weekly, 5)
	if len(top) != 3 {
		t.Fatalf("expected 3 active days, got %v", top)
	}
	if top[0] != "Tue" || top[1] != "Mon" || top[2] != "Sun" {
		t.Fatalf("unexpected order: %v", top)
	}
	if got := TopDays(weekly, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}

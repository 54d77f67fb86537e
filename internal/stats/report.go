package stats

import "github.com/verte-zerg/aetheris/internal/model"

// Report contains precomputed data for stats rendering.
type Report struct {
	Stats       model.UserStats
	Score       float64
	Progress    float64
	LevelSpan   float64
	NextLevelAt float64
	WeekTotal   float64
	BusiestDay  string
}

// BuildReport normalizes s and derives the values shown on the dashboard.
func BuildReport(s model.UserStats) Report {
	s = Normalize(s)
	score := Score(s)
	total, busiest := weekSummary(s.WeeklyActivity)
	progress, span := LevelProgress(score)
	return Report{
		Stats:       s,
		Score:       score,
		Progress:    progress,
		LevelSpan:   span,
		NextLevelAt: LevelThreshold(s.Level + 1),
		WeekTotal:   total,
		BusiestDay:  busiest,
	}
}

// weekSummary returns the summed activity and the busiest day, empty when the
// week is idle.
func weekSummary(weekly []model.ActivityPoint) (float64, string) {
	total := 0.0
	for _, p := range weekly {
		total += p.Value
	}
	busiest := ""
	if top := TopDays(weekly, 1); len(top) > 0 {
		busiest = top[0]
	}
	return total, busiest
}

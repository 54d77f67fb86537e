package stats

import (
	"time"

	"github.com/verte-zerg/aetheris/internal/model"
)

// DayLabels are the weekly activity slot labels in display order.
var DayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayLabel returns the slot label for a weekday.
func DayLabel(day time.Weekday) string {
	// time.Sunday is 0; slots start on Monday.
	return DayLabels[(int(day)+6)%7]
}

// DefaultWeekly returns seven zero-valued slots.
func DefaultWeekly() []model.ActivityPoint {
	out := make([]model.ActivityPoint, len(DayLabels))
	for i, label := range DayLabels {
		out[i] = model.ActivityPoint{Day: label}
	}
	return out
}

// DefaultStats returns the record used when nothing is stored.
func DefaultStats() model.UserStats {
	return CalculateLevel(model.UserStats{WeeklyActivity: DefaultWeekly()})
}

// NormalizeWeekly maps points onto the seven labelled slots. Unknown labels are
// dropped, duplicates keep the last value and negative values become zero.
func NormalizeWeekly(points []model.ActivityPoint) []model.ActivityPoint {
	out := DefaultWeekly()
	for _, p := range points {
		for i := range out {
			if out[i].Day == p.Day {
				v := p.Value
				if v < 0 {
					v = 0
				}
				out[i].Value = v
			}
		}
	}
	return out
}

// Normalize clamps counters, repairs the weekly sequence and derives the level.
func Normalize(s model.UserStats) model.UserStats {
	s.SessionsCompleted = nonNegative(s.SessionsCompleted)
	s.NodesExplored = nonNegative(s.NodesExplored)
	s.MinutesDebated = nonNegative(s.MinutesDebated)
	s.QuizScore = nonNegative(s.QuizScore)
	s.WeeklyActivity = NormalizeWeekly(s.WeeklyActivity)
	return CalculateLevel(s)
}

// ActivityMagnitude is the weighted change between two records.
func ActivityMagnitude(before, after model.UserStats) float64 {
	return weighted(
		float64(nonNegative(after.QuizScore)-nonNegative(before.QuizScore)),
		float64(nonNegative(after.MinutesDebated)-nonNegative(before.MinutesDebated)),
		float64(nonNegative(after.NodesExplored)-nonNegative(before.NodesExplored)),
	)
}

// UpdateActivity adds value to the slot for day. Other slots are copied unchanged.
func UpdateActivity(s model.UserStats, value float64, day time.Weekday) model.UserStats {
	weekly := NormalizeWeekly(s.WeeklyActivity)
	label := DayLabel(day)
	for i := range weekly {
		if weekly[i].Day == label {
			weekly[i].Value += value
		}
	}
	s.WeeklyActivity = weekly
	return s
}

// Merge folds delta into current. Present delta fields replace the current value
// (callers pass running totals), counters never drop below zero, level and title
// are re-derived and a positive activity magnitude is credited to today's slot.
func Merge(current model.UserStats, delta model.StatsDelta, today time.Weekday) model.UserStats {
	before := current
	merged := current
	merged.WeeklyActivity = NormalizeWeekly(current.WeeklyActivity)

	if delta.SessionsCompleted != nil {
		merged.SessionsCompleted = *delta.SessionsCompleted
	}
	if delta.NodesExplored != nil {
		merged.NodesExplored = *delta.NodesExplored
	}
	if delta.MinutesDebated != nil {
		merged.MinutesDebated = *delta.MinutesDebated
	}
	if delta.QuizScore != nil {
		merged.QuizScore = *delta.QuizScore
	}
	if delta.WeeklyActivity != nil {
		merged.WeeklyActivity = NormalizeWeekly(delta.WeeklyActivity)
	}
	merged.SessionsCompleted = nonNegative(merged.SessionsCompleted)
	merged.NodesExplored = nonNegative(merged.NodesExplored)
	merged.MinutesDebated = nonNegative(merged.MinutesDebated)
	merged.QuizScore = nonNegative(merged.QuizScore)

	merged = CalculateLevel(merged)
	if magnitude := ActivityMagnitude(before, merged); magnitude > 0 {
		merged = UpdateActivity(merged, magnitude, today)
	}
	return merged
}

// Engine applies merges against a clock.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an Engine. A nil clock uses time.Now.
func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Merge merges delta into current using today's weekday.
func (e *Engine) Merge(current model.UserStats, delta model.StatsDelta) model.UserStats {
	return Merge(current, delta, e.now().Weekday())
}

// Today returns the label of the slot merges currently credit.
func (e *Engine) Today() string {
	return DayLabel(e.now().Weekday())
}

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/aetheris/internal/model"
)

func weeklyValue(t *testing.T, s model.UserStats, day string) float64 {
	t.Helper()
	for _, p := range s.WeeklyActivity {
		if p.Day == day {
			return p.Value
		}
	}
	t.Fatalf("day %s missing from weekly activity", day)
	return 0
}

func TestMergeQuizScenario(t *testing.T) {
	start := DefaultStats()
	merged := Merge(start, model.StatsDelta{QuizScore: model.Int(100)}, time.Wednesday)

	assert.Equal(t, 100, merged.QuizScore)
	assert.InDelta(t, 10.0, ActivityMagnitude(start, merged), 1e-9)
	assert.Equal(t, 2, merged.Level)
	assert.Greater(t, merged.Level, start.Level)
	assert.Equal(t, "Novice", merged.Title)
	assert.InDelta(t, 10.0, weeklyValue(t, merged, "Wed"), 1e-9)
	for _, p := range merged.WeeklyActivity {
		if p.Day != "Wed" {
			assert.Zero(t, p.Value, "slot %s should be untouched", p.Day)
		}
	}
}

func TestMergeOverwritesRatherThanAdds(t *testing.T) {
	start := DefaultStats()
	start.SessionsCompleted = 4
	merged := Merge(start, model.StatsDelta{SessionsCompleted: model.Int(5)}, time.Monday)
	assert.Equal(t, 5, merged.SessionsCompleted)
}

func TestMergeClampsNegativeCounters(t *testing.T) {
	start := DefaultStats()
	start.NodesExplored = 3
	start.QuizScore = 40
	merged := Merge(start, model.StatsDelta{
		NodesExplored:     model.Int(-7),
		QuizScore:         model.Int(-1),
		SessionsCompleted: model.Int(-2),
		MinutesDebated:    model.Int(-9),
	}, time.Friday)

	assert.Zero(t, merged.NodesExplored)
	assert.Zero(t, merged.QuizScore)
	assert.Zero(t, merged.SessionsCompleted)
	assert.Zero(t, merged.MinutesDebated)
	assert.GreaterOrEqual(t, merged.Level, 1)
	assert.Equal(t, WeeklyValues(start.WeeklyActivity), WeeklyValues(merged.WeeklyActivity),
		"a negative magnitude must leave weekly activity untouched")
}

func TestMergeEmptyDeltaIsIdempotent(t *testing.T) {
	start := Merge(DefaultStats(), model.StatsDelta{MinutesDebated: model.Int(3), NodesExplored: model.Int(2)}, time.Tuesday)
	again := Merge(start, model.StatsDelta{}, time.Tuesday)

	assert.Equal(t, start.SessionsCompleted, again.SessionsCompleted)
	assert.Equal(t, start.NodesExplored, again.NodesExplored)
	assert.Equal(t, start.MinutesDebated, again.MinutesDebated)
	assert.Equal(t, start.QuizScore, again.QuizScore)
	assert.Equal(t, start.Level, again.Level)
	assert.Equal(t, start.Title, again.Title)
	assert.Equal(t, start.WeeklyActivity, again.WeeklyActivity)
}

func TestMergeRecomputesStaleLevel(t *testing.T) {
	stale := DefaultStats()
	stale.QuizScore = 1000
	stale.Level = 99
	stale.Title = "Bogus"
	merged := Merge(stale, model.StatsDelta{}, time.Sunday)
	assert.Equal(t, LevelForScore(100), merged.Level)
	assert.Equal(t, TitleForLevel(merged.Level), merged.Title)
}

func TestMergeSequentialEqualsCombined(t *testing.T) {
	start := DefaultStats()
	start.QuizScore = 20
	d1 := model.StatsDelta{QuizScore: model.Int(50), NodesExplored: model.Int(2)}
	d2 := model.StatsDelta{QuizScore: model.Int(80), MinutesDebated: model.Int(4)}
	combined := model.StatsDelta{QuizScore: model.Int(80), NodesExplored: model.Int(2), MinutesDebated: model.Int(4)}

	seq := Merge(Merge(start, d1, time.Monday), d2, time.Monday)
	once := Merge(start, combined, time.Monday)

	assert.Equal(t, once.QuizScore, seq.QuizScore)
	assert.Equal(t, once.NodesExplored, seq.NodesExplored)
	assert.Equal(t, once.MinutesDebated, seq.MinutesDebated)
	assert.Equal(t, once.SessionsCompleted, seq.SessionsCompleted)
	assert.Equal(t, once.Level, seq.Level)
	assert.InDelta(t, weeklyValue(t, once, "Mon"), weeklyValue(t, seq, "Mon"), 1e-9)
}

func TestMergeDeterministicLevel(t *testing.T) {
	a := Merge(DefaultStats(), model.StatsDelta{QuizScore: model.Int(300), NodesExplored: model.Int(5)}, time.Monday)
	b := Merge(Merge(DefaultStats(), model.StatsDelta{NodesExplored: model.Int(5)}, time.Thursday),
		model.StatsDelta{QuizScore: model.Int(300)}, time.Saturday)
	assert.Equal(t, a.Level, b.Level)
	assert.Equal(t, a.Title, b.Title)
}

func TestMergeCreditsTodayOncePerCall(t *testing.T) {
	s := DefaultStats()
	s = Merge(s, model.StatsDelta{NodesExplored: model.Int(1)}, time.Thursday)
	s = Merge(s, model.StatsDelta{NodesExplored: model.Int(2)}, time.Thursday)
	assert.InDelta(t, 20.0, weeklyValue(t, s, "Thu"), 1e-9)

	// A repeated total reports no new activity.
	s = Merge(s, model.StatsDelta{NodesExplored: model.Int(2)}, time.Thursday)
	assert.InDelta(t, 20.0, weeklyValue(t, s, "Thu"), 1e-9)
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	start := DefaultStats()
	before := append([]model.ActivityPoint(nil), start.WeeklyActivity...)
	_ = Merge(start, model.StatsDelta{MinutesDebated: model.Int(2)}, time.Monday)
	assert.Equal(t, before, start.WeeklyActivity)
}

func TestMergeReplacesWeeklyFromDelta(t *testing.T) {
	merged := Merge(DefaultStats(), model.StatsDelta{WeeklyActivity: []model.ActivityPoint{
		{Day: "Tue", Value: 4},
		{Day: "Nope", Value: 9},
		{Day: "Sat", Value: -1},
	}}, time.Monday)
	require.Len(t, merged.WeeklyActivity, 7)
	assert.InDelta(t, 4.0, weeklyValue(t, merged, "Tue"), 1e-9)
	assert.Zero(t, weeklyValue(t, merged, "Sat"))
}

func TestMergeRepairsMissingWeekly(t *testing.T) {
	merged := Merge(model.UserStats{}, model.StatsDelta{MinutesDebated: model.Int(1)}, time.Sunday)
	require.Len(t, merged.WeeklyActivity, 7)
	assert.Equal(t, "Mon", merged.WeeklyActivity[0].Day)
	assert.InDelta(t, 5.0, weeklyValue(t, merged, "Sun"), 1e-9)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Mon", DayLabel(time.Monday))
	assert.Equal(t, "Sat", DayLabel(time.Saturday))
	assert.Equal(t, "Sun", DayLabel(time.Sunday))
}

func TestEngineUsesClock(t *testing.T) {
	fixed := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) // Friday
	e := NewEngine(func() time.Time { return fixed })
	assert.Equal(t, "Fri", e.Today())
	merged := e.Merge(DefaultStats(), model.StatsDelta{NodesExplored: model.Int(1)})
	assert.InDelta(t, 10.0, weeklyValue(t, merged, "Fri"), 1e-9)
}

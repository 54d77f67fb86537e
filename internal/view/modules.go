package view

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/aetheris/internal/i18n"
	"github.com/verte-zerg/aetheris/internal/model"
	"github.com/verte-zerg/aetheris/internal/stats"
)

// QuizPointsPerAnswer is the quiz score a correct answer is worth.
const QuizPointsPerAnswer = 10

func quizDelta(s model.UserStats) model.StatsDelta {
	return model.StatsDelta{QuizScore: model.Int(s.QuizScore + QuizPointsPerAnswer)}
}

func nodeDelta(s model.UserStats) model.StatsDelta {
	return model.StatsDelta{NodesExplored: model.Int(s.NodesExplored + 1)}
}

func minuteDelta(s model.UserStats) model.StatsDelta {
	return model.StatsDelta{MinutesDebated: model.Int(s.MinutesDebated + 1)}
}

func sessionDelta(s model.UserStats) model.StatsDelta {
	return model.StatsDelta{SessionsCompleted: model.Int(s.SessionsCompleted + 1)}
}

type dashboardModule struct{}

func (dashboardModule) Render(ctx Context) string {
	var b strings.Builder
	name := ctx.User.Name
	if name == "" {
		name = "Explorer"
	}
	fmt.Fprintf(&b, "%s, %s\n\n", i18n.T(ctx.Language, i18n.KeyWelcome), name)
	r := stats.BuildReport(ctx.Stats)
	fmt.Fprintf(&b, "%s %d · %s\n", i18n.T(ctx.Language, i18n.KeyLevel), r.Stats.Level, r.Stats.Title)
	fmt.Fprintf(&b, "%s: %.0f / %.0f\n\n", i18n.T(ctx.Language, i18n.KeyNextLevel), r.Progress, r.LevelSpan)
	fmt.Fprintf(&b, "%-18s %d\n", i18n.T(ctx.Language, i18n.KeySessions), r.Stats.SessionsCompleted)
	fmt.Fprintf(&b, "%-18s %d\n", i18n.T(ctx.Language, i18n.KeyNodes), r.Stats.NodesExplored)
	fmt.Fprintf(&b, "%-18s %d\n", i18n.T(ctx.Language, i18n.KeyMinutes), r.Stats.MinutesDebated)
	fmt.Fprintf(&b, "%-18s %d\n", i18n.T(ctx.Language, i18n.KeyQuizScore), r.Stats.QuizScore)
	return b.String()
}

func (dashboardModule) HandleKey(string, Context) bool {
	return false
}

// practiceModule stands in for an external learning module: each press of
// enter reports one unit of progress.
type practiceModule struct {
	view   View
	action string
	delta  func(model.UserStats) model.StatsDelta
}

func (m practiceModule) Render(ctx Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.view.Label(ctx.Language))
	fmt.Fprintf(&b, "Press enter to %s.\n\n", m.action)
	fmt.Fprintf(&b, "%s %d · %s", i18n.T(ctx.Language, i18n.KeyLevel), ctx.Stats.Level, ctx.Stats.Title)
	return b.String()
}

func (m practiceModule) HandleKey(key string, ctx Context) bool {
	if key != "enter" {
		return false
	}
	ctx.Report(m.delta(ctx.Stats))
	return true
}

package stats

import (
	"sort"

	"github.com/verte-zerg/aetheris/internal/model"
)

// TopDays returns up to n day labels with the highest non-zero activity.
func TopDays(weekly []model.ActivityPoint, n int) []string {
	if n <= 0 || len(weekly) == 0 {
		return nil
	}
	items := make([]model.ActivityPoint, 0, len(weekly))
	order := map[string]int{}
	for i, label := range DayLabels {
		order[label] = i
	}
	for _, p := range NormalizeWeekly(weekly) {
		if p.Value > 0 {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value == items[j].Value {
			return order[items[i].Day] < order[items[j].Day]
		}
		return items[i].Value > items[j].Value
	})
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[i].Day)
	}
	return out
}

package tracker

// StatCard is one headline figure on the statistics panel.
type StatCard struct {
	Icon  string
	Value int
	Label string
	Badge string
}

// CategoryActivity is a per-category share shown on the statistics panel.
type CategoryActivity struct {
	Category CategoryInfo
	Percent  int
}

// Mock figures until real history exists.
const (
	monthlyCompletedTotal = 156
	completionStreak      = 12
)

var categoryActivityPercent = []int{45, 32, 28, 15}

// StatCards returns the headline figures. Only the first is live.
func (d *Dashboard) StatCards() []StatCard {
	return []StatCard{
		{Icon: "CheckCircle2", Value: d.CompletedCount(), Label: "Completed today", Badge: "+12%"},
		{Icon: "TrendingUp", Value: monthlyCompletedTotal, Label: "Total this month", Badge: "85%"},
		{Icon: "Zap", Value: completionStreak, Label: "Completion streak", Badge: "7 days"},
	}
}

// CategoryActivityShares returns the activity share per category, in category order.
func CategoryActivityShares() []CategoryActivity {
	known := Categories()
	out := make([]CategoryActivity, 0, len(known))
	for i, info := range known {
		pct := 0
		if i < len(categoryActivityPercent) {
			pct = categoryActivityPercent[i]
		}
		out = append(out, CategoryActivity{Category: info, Percent: pct})
	}
	return out
}

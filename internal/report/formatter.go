package report

import (
	"fmt"
	"strings"
	"time"

	"DealSentinel/internal/model"
)

// badge maps a recommendation label to its display emoji.
func badge(label model.Label) string {
	switch label {
	case model.LabelStrongBuy:
		return "🔥"
	case model.LabelBuy:
		return "✅"
	case model.LabelWaitHigh:
		return "🛑"
	case model.LabelWaitAverage:
		return "⏳"
	default:
		return "❓"
	}
}

// FormatCheckReport formats one price check into a plain-text report.
func FormatCheckReport(item string, rec *model.Recommendation, hist []int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🛒 DealSentinel check | %s\n\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Item: %s\n", item))
	b.WriteString(fmt.Sprintf("Current price: %.2f\n\n", rec.CurrentPrice))

	b.WriteString(fmt.Sprintf("%s %s\n", badge(rec.Label), rec.Label))
	b.WriteString(fmt.Sprintf("   %s\n", rec.Explanation))

	if rec.Label != model.LabelUnknown {
		b.WriteString(fmt.Sprintf("\nHistory avg: %.2f | min: %d | max: %d (deviation %+.1f%%)\n",
			rec.Average, rec.MinHistory, rec.MaxHistory, rec.DiffPercent))
	}
	if len(hist) > 0 {
		b.WriteString(fmt.Sprintf("History (oldest first): %v\n", hist))
	}

	return b.String()
}

package model

// Trend is the synthetic shape applied when fabricating price history.
type Trend string

const (
	TrendStable     Trend = "STABLE"
	TrendIncreasing Trend = "INCREASING"
	TrendDecreasing Trend = "DECREASING"
)

// Trends lists all trend shapes, for uniform random selection.
var Trends = []Trend{TrendStable, TrendIncreasing, TrendDecreasing}

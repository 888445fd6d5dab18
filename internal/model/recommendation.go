package model

// Label is the recommendation tier.
type Label string

const (
	LabelStrongBuy   Label = "strong_buy"
	LabelBuy         Label = "buy"
	LabelWaitHigh    Label = "wait_high"
	LabelWaitAverage Label = "wait_average"
	LabelUnknown     Label = "unknown"
)

// Recommendation is the final output of the analyzer.
// Average/MinHistory/MaxHistory/DiffPercent are the stats the decision was
// based on; MaxHistory does not drive any branch but is kept for inspection.
type Recommendation struct {
	Label        Label
	Explanation  string
	CurrentPrice float64
	Average      float64
	MinHistory   int
	MaxHistory   int
	DiffPercent  float64
}

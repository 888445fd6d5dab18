package analyzer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"DealSentinel/internal/history"
	"DealSentinel/internal/model"
)

// ErrZeroAverage is returned when the history mean is zero and the
// percentage deviation cannot be computed.
var ErrZeroAverage = errors.New("cannot analyze zero-average history")

// Analyzer owns one price window and produces purchase recommendations.
// Not safe for concurrent use; give each logical session its own instance.
type Analyzer struct {
	window *history.Window
	rng    *rand.Rand
}

// New creates an Analyzer with a time-seeded random source.
// historySize must be positive.
func New(historySize int) (*Analyzer, error) {
	return NewWithSource(historySize, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithSource creates an Analyzer with an injected random source,
// for deterministic generation.
func NewWithSource(historySize int, rng *rand.Rand) (*Analyzer, error) {
	if historySize <= 0 {
		return nil, fmt.Errorf("history size must be positive, got %d", historySize)
	}
	w, err := history.New(historySize)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Analyzer{window: w, rng: rng}, nil
}

// HistorySize returns the fixed window capacity.
func (a *Analyzer) HistorySize() int { return a.window.Cap() }

// History returns a copy of the stored window, oldest first.
// Empty until the first GenerateHistory call.
func (a *Analyzer) History() []int { return a.window.Snapshot() }

// GenerateHistory replaces the window with a synthetic past price trajectory
// ending near currentPrice and returns it, oldest first. The trend shape is
// picked uniformly at random; the result always fills the window exactly.
func (a *Analyzer) GenerateHistory(currentPrice float64) ([]int, error) {
	if currentPrice < 0 {
		return nil, fmt.Errorf("current price must be non-negative, got %.2f", currentPrice)
	}
	trend := model.Trends[a.rng.Intn(len(model.Trends))]
	a.generate(trend, currentPrice)
	return a.window.Snapshot(), nil
}

// generate fills the cleared window for the given trend. Slot 0 is the
// farthest past; the drift factor compounds linearly with distance, not
// exponentially.
func (a *Analyzer) generate(trend model.Trend, base float64) {
	a.window.Clear()
	size := a.window.Cap()
	for i := 0; i < size; i++ {
		stepsBack := size - i
		var price float64
		switch trend {
		case model.TrendIncreasing:
			// Prices were lower in the past.
			factor := 1.0 - 0.02*float64(stepsBack)
			price = base * factor * a.uniform(0.98, 1.02)
		case model.TrendDecreasing:
			// Prices were higher in the past.
			factor := 1.0 + 0.02*float64(stepsBack)
			price = base * factor * a.uniform(0.98, 1.02)
		default:
			price = base * a.uniform(0.95, 1.05)
		}
		// Truncate, don't round.
		a.window.Append(int(price))
	}
}

func (a *Analyzer) uniform(lo, hi float64) float64 {
	return lo + a.rng.Float64()*(hi-lo)
}

// Analyze compares currentPrice against the window's mean and minimum and
// returns a recommendation. With an empty window it returns the defined
// "unknown" sentinel; with a zero-mean window it returns ErrZeroAverage.
func (a *Analyzer) Analyze(currentPrice float64) (*model.Recommendation, error) {
	if a.window.Len() == 0 {
		return &model.Recommendation{
			Label:        model.LabelUnknown,
			Explanation:  "Not enough data",
			CurrentPrice: currentPrice,
		}, nil
	}

	avg, err := a.window.Mean()
	if err != nil {
		return nil, err
	}
	minH, err := a.window.Min()
	if err != nil {
		return nil, err
	}
	maxH, err := a.window.Max()
	if err != nil {
		return nil, err
	}
	if avg == 0 {
		return nil, ErrZeroAverage
	}

	diffPercent := (currentPrice - avg) / avg * 100

	rec := &model.Recommendation{
		CurrentPrice: currentPrice,
		Average:      avg,
		MinHistory:   minH,
		MaxHistory:   maxH,
		DiffPercent:  diffPercent,
	}

	// First match wins; the minimum-price check outranks the percentage tiers.
	switch {
	case currentPrice < float64(minH):
		rec.Label = model.LabelStrongBuy
		rec.Explanation = "Lowest price in recent history! Great deal."
	case diffPercent < -5:
		rec.Label = model.LabelBuy
		rec.Explanation = fmt.Sprintf("Price is %.1f%% below average.", math.Abs(diffPercent))
	case diffPercent < 0:
		rec.Label = model.LabelBuy
		rec.Explanation = "Price is slightly below average."
	case diffPercent > 10:
		rec.Label = model.LabelWaitHigh
		rec.Explanation = fmt.Sprintf("Price is %.1f%% above average. Likely to drop.", diffPercent)
	default:
		rec.Label = model.LabelWaitAverage
		rec.Explanation = "Price is average. You might find a better deal soon."
	}
	return rec, nil
}

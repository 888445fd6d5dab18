package feed

import (
	"fmt"
	"math/rand"
)

// RandomWalkSource simulates the item's current price as a multiplicative
// random walk. Each Next moves the price by at most ±volatility and never
// below minPrice. The daemon uses it because no live price feed exists.
type RandomWalkSource struct {
	price      float64
	volatility float64
	minPrice   float64
	rng        *rand.Rand
}

// NewRandomWalkSource creates a walk starting at startPrice.
// volatility must be in (0, 1) and startPrice positive.
func NewRandomWalkSource(startPrice, volatility, minPrice float64, seed int64) (*RandomWalkSource, error) {
	if startPrice <= 0 {
		return nil, fmt.Errorf("start price must be positive, got %.2f", startPrice)
	}
	if volatility <= 0 || volatility >= 1 {
		return nil, fmt.Errorf("volatility must be in (0, 1), got %.3f", volatility)
	}
	if minPrice < 0 {
		minPrice = 0
	}
	return &RandomWalkSource{
		price:      startPrice,
		volatility: volatility,
		minPrice:   minPrice,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *RandomWalkSource) Name() string { return "random-walk" }

// Next advances the walk one step and returns the new price.
func (s *RandomWalkSource) Next() (float64, error) {
	ret := (s.rng.Float64() - 0.5) * 2.0 * s.volatility // ± volatility
	s.price *= 1.0 + ret
	if s.price < s.minPrice {
		s.price = s.minPrice
	}
	return s.price, nil
}

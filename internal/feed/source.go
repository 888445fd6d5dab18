package feed

// Source supplies the current price of the tracked item.
type Source interface {
	Next() (float64, error)
	Name() string
}

// StaticSource returns a fixed price, for one-shot checks and testing.
type StaticSource struct {
	Price float64
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Next() (float64, error) {
	return s.Price, nil
}

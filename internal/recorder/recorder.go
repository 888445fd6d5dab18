package recorder

// CheckEvent holds all data for one recorded price check.
type CheckEvent struct {
	Item        string
	Price       float64
	Label       string
	Explanation string
	DiffPercent float64
	Average     float64
	MinHistory  int
	MaxHistory  int
	History     []int // the synthetic window the recommendation was based on, oldest first
}

// Recorder persists emitted recommendations for later inspection.
type Recorder interface {
	RecordCheck(evt *CheckEvent) error
	Close() error
}

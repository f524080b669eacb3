package journey

import (
	"slices"
	"strings"
)

// Strategy names accepted by ParseStrategy.
const (
	StrategyFastest  = "fastest"
	StrategyCheapest = "cheapest"
	StrategySmart    = "smart"
)

// Strategy scores a combination; lower is better.
type Strategy interface {
	Name() string
	Score(c Combination) float64
}

// FastestStrategy orders by total journey time.
type FastestStrategy struct{}

func (s *FastestStrategy) Name() string { return StrategyFastest }

func (s *FastestStrategy) Score(c Combination) float64 {
	return float64(c.Time)
}

// CheapestStrategy orders by total cost.
type CheapestStrategy struct{}

func (s *CheapestStrategy) Name() string { return StrategyCheapest }

func (s *CheapestStrategy) Score(c Combination) float64 {
	return c.Cost
}

// SmartStrategy balances cost against time, valuing each minute at
// TimeWeight currency units.
type SmartStrategy struct {
	TimeWeight float64
}

func (s *SmartStrategy) Name() string { return StrategySmart }

func (s *SmartStrategy) Score(c Combination) float64 {
	return c.Cost + s.TimeWeight*float64(c.Time)
}

// ParseStrategy returns the strategy for name. Unknown or empty names fall
// back to smart. A non-positive weight uses DefaultSmartTimeWeight.
func ParseStrategy(name string, weight float64) Strategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyFastest:
		return &FastestStrategy{}
	case StrategyCheapest:
		return &CheapestStrategy{}
	default:
		if weight <= 0 {
			weight = DefaultSmartTimeWeight
		}
		return &SmartStrategy{TimeWeight: weight}
	}
}

// StrategyNames lists the accepted strategy names.
func StrategyNames() []string {
	return []string{StrategyFastest, StrategyCheapest, StrategySmart}
}

// Rank returns up to limit combinations in ascending score order. Ties keep
// their input order. The input slice is not modified. A non-positive limit
// returns every combination.
func Rank(combos []Combination, strategy Strategy, limit int) []Combination {
	ranked := slices.Clone(combos)
	slices.SortStableFunc(ranked, func(a, b Combination) int {
		sa, sb := strategy.Score(a), strategy.Score(b)
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

package journey

import "github.com/legwise/legwise/internal/catalog"

// Enumerate pairs every first-mile leg with every last-mile leg around main,
// first-mile major. The inputs are not modified.
func Enumerate(first, last []catalog.Leg, main *catalog.Leg) []Pair {
	pairs := make([]Pair, 0, len(first)*len(last))
	for i := range first {
		for j := range last {
			pairs = append(pairs, Pair{
				FirstMile: &first[i],
				MainLeg:   main,
				LastMile:  &last[j],
			})
		}
	}
	return pairs
}

package domain

// DoubleSymbolWeight is how much a double-symbol cost counts relative to a
// single-symbol cost of the same color.
const DoubleSymbolWeight = 1.5

// Weigh turns per-color symbol counts into weighted symbol totals.
func Weigh(counts [NumColors]SymbolCount) Weights {
	var w Weights
	for i, c := range counts {
		w[i] = float64(c.Single) + float64(c.Double)*DoubleSymbolWeight
	}
	return w
}

// ValidateCounts reports ErrNegativeQuantity if any count is below zero.
func ValidateCounts(counts [NumColors]SymbolCount) error {
	for _, c := range counts {
		if c.Single < 0 || c.Double < 0 {
			return ErrNegativeQuantity
		}
	}
	return nil
}

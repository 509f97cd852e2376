package domain

import "math/big"

// Allocate splits totalLands across the five colors in proportion to
// weights using the largest-remainder method. The result always sums to
// totalLands.
//
// totalSymbols must be the sum of weights and greater than zero; callers
// check this before calling. Shares are computed exactly, so equal
// remainders compare equal and go to the lowest color index.
func Allocate(weights Weights, totalSymbols float64, totalLands int) Allocation {
	var result Allocation

	total := new(big.Rat)
	var exact [NumColors]*big.Rat
	for i, w := range weights {
		exact[i] = new(big.Rat).SetFloat64(w)
		total.Add(total, exact[i])
	}
	if totalSymbols <= 0 || total.Sign() <= 0 {
		return result
	}

	lands := new(big.Rat).SetInt64(int64(totalLands))
	var ideal [NumColors]*big.Rat
	for i := range exact {
		ideal[i] = new(big.Rat).Mul(exact[i], lands)
		ideal[i].Quo(ideal[i], total)
		// Shares are non-negative, so truncation is floor.
		result[i] = int(new(big.Int).Quo(ideal[i].Num(), ideal[i].Denom()).Int64())
	}

	deficit := totalLands - result.Sum()
	for range deficit {
		result[largestRemainder(ideal, result)]++
	}
	return result
}

// largestRemainder returns the first index with the greatest ideal-minus-
// allocated remainder.
func largestRemainder(ideal [NumColors]*big.Rat, alloc Allocation) int {
	best := 0
	bestRem := remainder(ideal[0], alloc[0])
	for i := 1; i < NumColors; i++ {
		if rem := remainder(ideal[i], alloc[i]); rem.Cmp(bestRem) > 0 {
			best, bestRem = i, rem
		}
	}
	return best
}

func remainder(ideal *big.Rat, allocated int) *big.Rat {
	return new(big.Rat).Sub(ideal, new(big.Rat).SetInt64(int64(allocated)))
}

package domain_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/randomtoy/manabase-go/internal/domain"
)

func allocate(w domain.Weights, lands int) domain.Allocation {
	return domain.Allocate(w, w.Total(), lands)
}

func TestAllocate_Examples(t *testing.T) {
	tests := []struct {
		name    string
		weights domain.Weights
		lands   int
		want    domain.Allocation
	}{
		{"single color", domain.Weights{10, 0, 0, 0, 0}, 17, domain.Allocation{17, 0, 0, 0, 0}},
		{"single color last", domain.Weights{0, 0, 0, 0, 4}, 16, domain.Allocation{0, 0, 0, 0, 16}},
		{"even split ties go white first", domain.Weights{1, 1, 1, 1, 1}, 7, domain.Allocation{2, 2, 1, 1, 1}},
		{"even split exact", domain.Weights{1, 1, 1, 1, 1}, 10, domain.Allocation{2, 2, 2, 2, 2}},
		{"weighted doubles", domain.Weights{3.5, 1, 1, 1, 1}, 15, domain.Allocation{7, 2, 2, 2, 2}},
		{"largest remainder wins", domain.Weights{1, 2, 0, 0, 0}, 17, domain.Allocation{6, 11, 0, 0, 0}},
		{"two color ties", domain.Weights{0, 0, 3, 3, 0}, 17, domain.Allocation{0, 0, 9, 8, 0}},
		{"thirds tie goes to blue", domain.Weights{0, 1, 2.5, 1, 0}, 6, domain.Allocation{0, 2, 3, 1, 0}},
		{"thirds tie larger deck", domain.Weights{0, 1, 2.5, 1, 0}, 15, domain.Allocation{0, 4, 8, 3, 0}},
		{"zero lands", domain.Weights{3, 1, 2, 0, 5}, 0, domain.Allocation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := allocate(tt.weights, tt.lands)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAllocate_SumAndNonNegative(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 2000 {
		var w domain.Weights
		for c := range w {
			if rng.IntN(3) == 0 {
				continue
			}
			w[c] = float64(rng.IntN(20)) + 1.5*float64(rng.IntN(10))
		}
		if w.Total() == 0 {
			w[rng.IntN(domain.NumColors)] = 1
		}
		lands := rng.IntN(60)

		got := allocate(w, lands)
		if got.Sum() != lands {
			t.Fatalf("case %d: weights %v lands %d: sum %d", i, w, lands, got.Sum())
		}
		for c, n := range got {
			if n < 0 {
				t.Fatalf("case %d: color %d negative count %d", i, c, n)
			}
			if w[c] == 0 && n != 0 {
				t.Fatalf("case %d: color %d has no weight but got %d lands", i, c, n)
			}
		}
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	w := domain.Weights{2.5, 4, 1, 0, 3}
	first := allocate(w, 23)
	for range 50 {
		if got := allocate(w, 23); got != first {
			t.Fatalf("expected %v, got %v", first, got)
		}
	}
}

func TestAllocate_LargeTotals(t *testing.T) {
	w := domain.Weights{3.5, 1, 1, 1, 1}
	lands := 1<<55 + 7
	if got := allocate(w, lands); got.Sum() != lands {
		t.Errorf("expected sum %d, got %d (%v)", lands, got.Sum(), got)
	}

	got := allocate(domain.Weights{1, 0, 0, 0, 0}, math.MaxInt64)
	want := domain.Allocation{math.MaxInt64, 0, 0, 0, 0}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// referenceAllocate is largest-remainder apportionment over integer
// half-symbol units, where every comparison is exact.
func referenceAllocate(halves [domain.NumColors]int, lands int) domain.Allocation {
	total := 0
	for _, h := range halves {
		total += h
	}

	var (
		out    domain.Allocation
		rem    [domain.NumColors]int
		picked [domain.NumColors]bool
	)
	deficit := lands
	for i, h := range halves {
		out[i] = h * lands / total
		rem[i] = h * lands % total
		deficit -= out[i]
	}
	for range deficit {
		best := -1
		for i := range rem {
			if !picked[i] && (best < 0 || rem[i] > rem[best]) {
				best = i
			}
		}
		picked[best] = true
		out[best]++
	}
	return out
}

func TestAllocate_MatchesExactReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for i := range 5000 {
		var (
			counts [domain.NumColors]domain.SymbolCount
			halves [domain.NumColors]int
		)
		for c := range counts {
			if rng.IntN(3) == 0 {
				continue
			}
			counts[c] = domain.SymbolCount{Single: rng.IntN(8), Double: rng.IntN(5)}
			halves[c] = 2*counts[c].Single + 3*counts[c].Double
		}
		if halves == [domain.NumColors]int{} {
			counts[domain.Blue].Single = 1
			halves[domain.Blue] = 2
		}
		lands := rng.IntN(61)

		got := allocate(domain.Weigh(counts), lands)
		want := referenceAllocate(halves, lands)
		if got != want {
			t.Fatalf("case %d: counts %v lands %d: expected %v, got %v", i, counts, lands, want, got)
		}
	}
}

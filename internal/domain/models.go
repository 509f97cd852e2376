package domain

// Color is one of the five mana colors. The numeric order is fixed and
// doubles as the tie-break order when allocating lands.
type Color int

const (
	White Color = iota
	Blue
	Black
	Red
	Green
)

// NumColors is the number of mana colors and basic land types.
const NumColors = 5

// Colors lists every color in allocation order.
var Colors = [NumColors]Color{White, Blue, Black, Red, Green}

var colorCodes = [NumColors]string{"W", "U", "B", "R", "G"}

// Code returns the single-letter mana code (W, U, B, R, G).
func (c Color) Code() string {
	if c < 0 || int(c) >= NumColors {
		return "?"
	}
	return colorCodes[c]
}

func (c Color) String() string { return c.Code() }

// SymbolCount is how many single-symbol and double-symbol costs of one
// color a deck contains.
type SymbolCount struct {
	Single int `json:"single"`
	Double int `json:"double"`
}

// Weights holds one weighted symbol total per color, in Colors order.
type Weights [NumColors]float64

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	return total
}

// Allocation is a basic land count per color, in Colors order:
// plains, islands, swamps, mountains, forests.
type Allocation [NumColors]int

// Sum returns the total number of lands in the allocation.
func (a Allocation) Sum() int {
	var sum int
	for _, n := range a {
		sum += n
	}
	return sum
}

package ports

import (
	"context"

	"github.com/randomtoy/manabase-go/internal/domain"
)

// LandInfo describes the basic land that produces one color.
type LandInfo struct {
	Color     domain.Color
	ColorName string
	LandName  string
}

// LandCatalog names the basic lands and resolves user-typed color names.
type LandCatalog interface {
	Lands(ctx context.Context) ([domain.NumColors]LandInfo, error)
	Resolve(ctx context.Context, name string) (domain.Color, error)
}

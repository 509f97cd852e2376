package app

import (
	"context"
	"fmt"

	"github.com/randomtoy/manabase-go/internal/domain"
	"github.com/randomtoy/manabase-go/internal/ports"
)

// RecommendRequest is the application-level input (no HTTP types).
type RecommendRequest struct {
	Symbols    [domain.NumColors]domain.SymbolCount
	TotalLands int
}

// LandCount is one line of a recommendation, e.g. "Plains: 7".
type LandCount struct {
	ports.LandInfo
	Count int
}

// RecommendResponse is the application-level output.
type RecommendResponse struct {
	Allocation   domain.Allocation
	Weights      domain.Weights
	TotalSymbols float64
	Lands        []LandCount
}

// LandService turns a mana symbol breakdown into a basic land split.
type LandService struct {
	catalog ports.LandCatalog
}

func NewLandService(catalog ports.LandCatalog) *LandService {
	return &LandService{catalog: catalog}
}

func (s *LandService) Recommend(ctx context.Context, req RecommendRequest) (RecommendResponse, error) {
	if req.TotalLands < 0 {
		return RecommendResponse{}, domain.ErrNegativeLands
	}
	if err := domain.ValidateCounts(req.Symbols); err != nil {
		return RecommendResponse{}, err
	}

	weights := domain.Weigh(req.Symbols)
	total := weights.Total()
	if total == 0 {
		return RecommendResponse{}, domain.ErrNoSymbols
	}

	lands, err := s.Lands(ctx)
	if err != nil {
		return RecommendResponse{}, err
	}

	alloc := domain.Allocate(weights, total, req.TotalLands)

	return RecommendResponse{
		Allocation:   alloc,
		Weights:      weights,
		TotalSymbols: total,
		Lands:        toLandCounts(lands, alloc),
	}, nil
}

// Lands returns the basic land names in allocation order.
func (s *LandService) Lands(ctx context.Context) ([domain.NumColors]ports.LandInfo, error) {
	lands, err := s.catalog.Lands(ctx)
	if err != nil {
		return lands, fmt.Errorf("load lands: %w", err)
	}
	return lands, nil
}

// ResolveColor maps a user-typed color or land name to a color.
func (s *LandService) ResolveColor(ctx context.Context, name string) (domain.Color, error) {
	c, err := s.catalog.Resolve(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("resolve color: %w", err)
	}
	return c, nil
}

func toLandCounts(lands [domain.NumColors]ports.LandInfo, alloc domain.Allocation) []LandCount {
	out := make([]LandCount, domain.NumColors)
	for i, l := range lands {
		out[i] = LandCount{LandInfo: l, Count: alloc[i]}
	}
	return out
}

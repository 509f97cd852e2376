package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/randomtoy/manabase-go/internal/app"
	"github.com/randomtoy/manabase-go/internal/domain"
)

// parseArgs reads COLOR=SINGLE[/DOUBLE] arguments. Repeated colors add up.
func parseArgs(ctx context.Context, svc *app.LandService, args []string) (app.RecommendRequest, error) {
	var req app.RecommendRequest
	for _, arg := range args {
		name, counts, ok := strings.Cut(arg, "=")
		if !ok {
			return req, fmt.Errorf("argument %q: expected COLOR=SINGLE[/DOUBLE]", arg)
		}

		color, err := svc.ResolveColor(ctx, name)
		if err != nil {
			return req, fmt.Errorf("argument %q: %w", arg, err)
		}

		sc, err := parseCounts(counts)
		if err != nil {
			return req, fmt.Errorf("argument %q: %w", arg, err)
		}
		req.Symbols[color].Single += sc.Single
		req.Symbols[color].Double += sc.Double
	}
	return req, nil
}

func parseCounts(s string) (domain.SymbolCount, error) {
	single, double, hasDouble := strings.Cut(s, "/")

	var sc domain.SymbolCount
	var err error
	if sc.Single, err = parseCount(single); err != nil {
		return sc, err
	}
	if hasDouble {
		if sc.Double, err = parseCount(double); err != nil {
			return sc, err
		}
	}
	return sc, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if n < 0 {
		return 0, domain.ErrNegativeQuantity
	}
	return n, nil
}

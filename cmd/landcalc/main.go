// Command landcalc prints a basic land split for a mana symbol breakdown.
//
//	landcalc -lands 17 white=2/1 blue=3 g=0/2
//
// Each argument is COLOR=SINGLE[/DOUBLE]. COLOR may be a code, color name or
// land name.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/randomtoy/manabase-go/internal/adapters/lands"
	"github.com/randomtoy/manabase-go/internal/app"
	"github.com/randomtoy/manabase-go/internal/domain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("landcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	totalLands := fs.Int("lands", 17, "total number of basic lands")
	verbose := fs.Bool("v", false, "log symbol weights")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: landcalc [-lands N] [-v] COLOR=SINGLE[/DOUBLE] ...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()
	svc := app.NewLandService(lands.NewEmbeddedCatalog())

	req, err := parseArgs(ctx, svc, fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, "landcalc:", err)
		return 2
	}
	req.TotalLands = *totalLands

	resp, err := svc.Recommend(ctx, req)
	if errors.Is(err, domain.ErrNoSymbols) {
		fmt.Fprintln(stderr, "Invalid Input: Add at least one symbol.")
		return 1
	}
	if err != nil {
		fmt.Fprintln(stderr, "landcalc:", err)
		return 1
	}

	logger.Debug("weighted symbols", "weights", resp.Weights, "total", resp.TotalSymbols)

	for _, l := range resp.Lands {
		fmt.Fprintf(stdout, "%s: %d\n", l.LandName, l.Count)
	}
	return 0
}

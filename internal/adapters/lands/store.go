package lands

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/randomtoy/manabase-go/internal/domain"
	"github.com/randomtoy/manabase-go/internal/ports"
)

//go:embed data/lands.yaml
var catalogFS embed.FS

type entry struct {
	Code    string   `yaml:"code"`
	Color   string   `yaml:"color"`
	Land    string   `yaml:"land"`
	Aliases []string `yaml:"aliases"`
}

// EmbeddedCatalog loads the basic land catalog from embedded YAML.
type EmbeddedCatalog struct {
	once  sync.Once
	lands [domain.NumColors]ports.LandInfo
	names map[string]domain.Color
	err   error
}

func NewEmbeddedCatalog() *EmbeddedCatalog {
	return &EmbeddedCatalog{}
}

func (s *EmbeddedCatalog) init() {
	raw, err := catalogFS.ReadFile("data/lands.yaml")
	if err != nil {
		s.err = fmt.Errorf("read embedded catalog: %w", err)
		return
	}
	s.err = s.load(raw)
}

func (s *EmbeddedCatalog) load(raw []byte) error {
	var entries []entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse land catalog: %w", err)
	}
	if len(entries) != domain.NumColors {
		return fmt.Errorf("land catalog: expected %d entries, got %d", domain.NumColors, len(entries))
	}

	s.names = make(map[string]domain.Color)
	for i, e := range entries {
		c := domain.Colors[i]
		if !strings.EqualFold(e.Code, c.Code()) {
			return fmt.Errorf("land catalog: entry %d has code %q, want %q", i, e.Code, c.Code())
		}
		s.lands[i] = ports.LandInfo{Color: c, ColorName: e.Color, LandName: e.Land}
		for _, name := range append([]string{e.Code, e.Color, e.Land}, e.Aliases...) {
			s.names[strings.ToLower(name)] = c
		}
	}
	return nil
}

func (s *EmbeddedCatalog) Lands(_ context.Context) ([domain.NumColors]ports.LandInfo, error) {
	s.once.Do(s.init)
	return s.lands, s.err
}

// Resolve maps a color code, color name, land name or alias to its color.
// Misspellings within a small edit distance of a known name are accepted.
func (s *EmbeddedCatalog) Resolve(_ context.Context, name string) (domain.Color, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return 0, s.err
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := s.names[key]; ok {
		return c, nil
	}

	// Single letters are too short to correct safely.
	if len(key) < 3 {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownColor, name)
	}

	best, bestDist, ambiguous := domain.Color(0), -1, false
	for known, c := range s.names {
		if len(known) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(key, known)
		if dist > distanceLimit(len(known)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			best, bestDist, ambiguous = c, dist, false
		case dist == bestDist && c != best:
			ambiguous = true
		}
	}
	if bestDist < 0 || ambiguous {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownColor, name)
	}
	return best, nil
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

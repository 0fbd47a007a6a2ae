// Package drop draws weighted outcomes from a catalogue.
package drop

import (
	"fmt"

	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/domain"
)

// Source is the random stream a sampler consumes. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Sampler draws from one catalogue with its own random source.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	cat   catalogue.Catalogue
	total int
	src   Source
}

// NewSampler validates cat and binds it to src.
func NewSampler(cat catalogue.Catalogue, src Source) (*Sampler, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("new sampler: %w", err)
	}
	return &Sampler{cat: cat, total: cat.TotalWeight(), src: src}, nil
}

// Sample rolls uniformly in [0, total) and picks the first entry whose
// cumulative weight exceeds the roll, then a count uniform in its range.
func (s *Sampler) Sample() domain.DrawResult {
	roll := s.src.Intn(s.total)

	cumulative := 0
	for _, entry := range s.cat.Entries {
		cumulative += entry.Weight
		if cumulative > roll {
			return domain.DrawResult{
				Roll:  roll,
				Item:  entry.Item,
				Count: entry.MinCount + s.src.Intn(entry.MaxCount-entry.MinCount+1),
			}
		}
	}

	// Unreachable for a validated catalogue.
	return domain.DrawResult{Roll: roll, Item: domain.ItemNone}
}

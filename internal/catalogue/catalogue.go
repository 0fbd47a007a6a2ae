// Package catalogue holds weighted drop tables and the presets for piglin
// bartering and blaze fights.
package catalogue

import (
	"fmt"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/validation"
)

// Catalogue is an ordered drop table. Order matters: the sampler walks
// entries in sequence.
type Catalogue struct {
	Name    string             `json:"name" yaml:"name"`
	Entries []domain.DropEntry `json:"entries" yaml:"entries"`
}

// New builds a catalogue from entries in order.
func New(name string, entries ...domain.DropEntry) Catalogue {
	return Catalogue{Name: name, Entries: entries}
}

// Validate checks every entry's invariants, item uniqueness and that the
// table can actually be drawn from.
func (c Catalogue) Validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf(ErrFmtNoEntries, domain.ErrEmptyCatalogue, c.Name)
	}

	seen := make(map[domain.Item]struct{}, len(c.Entries))
	for i, entry := range c.Entries {
		if err := validation.Struct(entry); err != nil {
			return fmt.Errorf(ErrFmtEntryInvalid, domain.ErrInvalidCatalogEntry, i, entry.Item, err)
		}
		if _, dup := seen[entry.Item]; dup {
			return fmt.Errorf(ErrFmtDuplicateItem, domain.ErrDuplicateItem, entry.Item)
		}
		seen[entry.Item] = struct{}{}
	}

	if c.TotalWeight() <= 0 {
		return fmt.Errorf(ErrFmtZeroTotalWeight, domain.ErrEmptyCatalogue, c.Name)
	}
	return nil
}

// TotalWeight is the sum of all entry weights.
func (c Catalogue) TotalWeight() int {
	total := 0
	for _, e := range c.Entries {
		total += e.Weight
	}
	return total
}

// Entry looks up the entry for item.
func (c Catalogue) Entry(item domain.Item) (domain.DropEntry, error) {
	for _, e := range c.Entries {
		if e.Item == item {
			return e, nil
		}
	}
	return domain.DropEntry{}, fmt.Errorf(ErrFmtItemMissing, domain.ErrItemNotInCatalogue, item, c.Name)
}

// Contains reports whether item has an entry.
func (c Catalogue) Contains(item domain.Item) bool {
	_, err := c.Entry(item)
	return err == nil
}

// Probability is the chance a single draw selects item.
func (c Catalogue) Probability(item domain.Item) (float64, error) {
	e, err := c.Entry(item)
	if err != nil {
		return 0, err
	}
	total := c.TotalWeight()
	if total <= 0 {
		return 0, fmt.Errorf(ErrFmtZeroTotalWeight, domain.ErrEmptyCatalogue, c.Name)
	}
	return float64(e.Weight) / float64(total), nil
}

// Average is the mean count yielded when item is drawn.
func (c Catalogue) Average(item domain.Item) (float64, error) {
	e, err := c.Entry(item)
	if err != nil {
		return 0, err
	}
	return e.Average(), nil
}

// Range returns item's inclusive count range.
func (c Catalogue) Range(item domain.Item) (minCount, maxCount int, err error) {
	e, err := c.Entry(item)
	if err != nil {
		return 0, 0, err
	}
	return e.MinCount, e.MaxCount, nil
}

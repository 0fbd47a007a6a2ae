// Package farm simulates runs and streams of drop farming.
package farm

import "github.com/osse101/DropLuck_Go/internal/domain"

// Drawer yields one drop per call. *drop.Sampler satisfies it.
type Drawer interface {
	Sample() domain.DrawResult
}

// FarmForItem draws until the cumulative count of item reaches minimum and
// returns every draw made. A minimum of zero or less performs no draws.
// The item must be reachable with a positive count or this never returns.
func FarmForItem(d Drawer, item domain.Item, minimum int) []domain.DrawResult {
	var draws []domain.DrawResult
	collected := 0
	for collected < minimum {
		r := d.Sample()
		if r.Item == item {
			collected += r.Count
		}
		draws = append(draws, r)
	}
	return draws
}

// Trace is the draw history of farming one item.
type Trace struct {
	Item  domain.Item
	Draws []domain.DrawResult
}

// Total is the number of draws made.
func (t Trace) Total() int {
	return len(t.Draws)
}

// Successful counts draws that selected the farmed item.
func (t Trace) Successful() int {
	n := 0
	for _, d := range t.Draws {
		if d.Item == t.Item {
			n++
		}
	}
	return n
}

// Collected sums the counts of the farmed item.
func (t Trace) Collected() int {
	n := 0
	for _, d := range t.Draws {
		if d.Item == t.Item {
			n += d.Count
		}
	}
	return n
}

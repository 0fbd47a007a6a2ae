package stats

import (
	"fmt"

	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/domain"
)

// RangedModel scores the multi-count item. Successful draws are ignored and
// the failures (draws that missed the item) follow a negative binomial whose
// shape is the expected number of successes needed to reach the target.
type RangedModel struct {
	Item   domain.Item
	Total  int
	PerRun int
	dist   NegativeBinomial
}

// NewRangedModel builds the model for farming total of item over runs of
// perRun each. A zero total yields the identity model.
func NewRangedModel(cat catalogue.Catalogue, item domain.Item, total, perRun int, solver *ExpectedDrawsSolver) (RangedModel, error) {
	m := RangedModel{Item: item, Total: total, PerRun: perRun}
	if total == 0 {
		return m, nil
	}
	if perRun <= 0 {
		return RangedModel{}, fmt.Errorf(ErrFmtPerRun, domain.ErrInvalidDistribution, perRun, total)
	}

	p, err := cat.Probability(item)
	if err != nil {
		return RangedModel{}, err
	}
	lo, hi, err := cat.Range(item)
	if err != nil {
		return RangedModel{}, err
	}
	perRunDraws, err := solver.ExpectedDraws(lo, hi, perRun)
	if err != nil {
		return RangedModel{}, err
	}

	r := float64(total) / float64(perRun) * perRunDraws
	m.dist, err = NewNegativeBinomial(r, p)
	if err != nil {
		return RangedModel{}, err
	}
	return m, nil
}

// IsIdentity reports whether the model was built for a zero target.
func (m RangedModel) IsIdentity() bool {
	return m.Total == 0
}

// Distribution returns the underlying negative binomial; ok is false for the
// identity model.
func (m RangedModel) Distribution() (NegativeBinomial, bool) {
	return m.dist, !m.IsIdentity()
}

// Luck is the probability of needing at most this many failed draws.
func (m RangedModel) Luck(draws, successes int) float64 {
	if m.IsIdentity() {
		return IdentityLuck
	}
	return m.dist.CDF(float64(draws - successes))
}

// Probability is the chance of exactly this many failed draws.
func (m RangedModel) Probability(draws, successes int) float64 {
	if m.IsIdentity() {
		return IdentityProbability
	}
	return m.dist.PMF(draws - successes)
}

// BinaryModel scores the zero-or-one item. Every draw selects it, so the
// shape is the target and the per-draw success chance is the mean count.
type BinaryModel struct {
	Item  domain.Item
	Total int
	dist  NegativeBinomial
}

// NewBinaryModel builds the model for farming total of item. A zero total
// yields the identity model.
func NewBinaryModel(cat catalogue.Catalogue, item domain.Item, total int) (BinaryModel, error) {
	m := BinaryModel{Item: item, Total: total}
	if total == 0 {
		return m, nil
	}

	avg, err := cat.Average(item)
	if err != nil {
		return BinaryModel{}, err
	}
	m.dist, err = NewNegativeBinomial(float64(total), avg)
	if err != nil {
		return BinaryModel{}, err
	}
	return m, nil
}

// IsIdentity reports whether the model was built for a zero target.
func (m BinaryModel) IsIdentity() bool {
	return m.Total == 0
}

// Distribution returns the underlying negative binomial; ok is false for the
// identity model.
func (m BinaryModel) Distribution() (NegativeBinomial, bool) {
	return m.dist, !m.IsIdentity()
}

// Luck is the probability of needing at most this many draws.
func (m BinaryModel) Luck(draws int) float64 {
	if m.IsIdentity() {
		return IdentityLuck
	}
	return m.dist.CDF(float64(draws - m.Total))
}

// Probability is the chance of needing exactly this many draws.
func (m BinaryModel) Probability(draws int) float64 {
	if m.IsIdentity() {
		return IdentityProbability
	}
	return m.dist.PMF(draws - m.Total)
}

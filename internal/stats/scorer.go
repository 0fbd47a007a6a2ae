package stats

import "github.com/osse101/DropLuck_Go/internal/domain"

// Scorer turns stream summaries into luck values.
// Lower luck means a luckier (less likely) stream.
type Scorer struct {
	Ranged RangedModel
	Binary BinaryModel
}

// RangedLuck scores the ranged item of s. A summary with no ranged target
// is scored as the identity regardless of the model.
func (sc Scorer) RangedLuck(s domain.StreamSummary) float64 {
	if s.RangedTarget == 0 {
		return IdentityLuck
	}
	return sc.Ranged.Luck(s.RangedDraws, s.RangedSuccesses)
}

// BinaryLuck scores the binary item of s.
func (sc Scorer) BinaryLuck(s domain.StreamSummary) float64 {
	if s.BinaryTarget == 0 {
		return IdentityLuck
	}
	return sc.Binary.Luck(s.BinaryDraws)
}

// RangedProbability is the point probability of the ranged outcome of s.
func (sc Scorer) RangedProbability(s domain.StreamSummary) float64 {
	if s.RangedTarget == 0 {
		return IdentityProbability
	}
	return sc.Ranged.Probability(s.RangedDraws, s.RangedSuccesses)
}

// BinaryProbability is the point probability of the binary outcome of s.
func (sc Scorer) BinaryProbability(s domain.StreamSummary) float64 {
	if s.BinaryTarget == 0 {
		return IdentityProbability
	}
	return sc.Binary.Probability(s.BinaryDraws)
}

// Luck is the product of both per-item luck values.
func (sc Scorer) Luck(s domain.StreamSummary) float64 {
	return sc.RangedLuck(s) * sc.BinaryLuck(s)
}

// Probability is the product of both point probabilities.
func (sc Scorer) Probability(s domain.StreamSummary) float64 {
	return sc.RangedProbability(s) * sc.BinaryProbability(s)
}

// Score evaluates s once.
func (sc Scorer) Score(s domain.StreamSummary) domain.ScoredSummary {
	return domain.ScoredSummary{
		Summary:     s,
		Luck:        sc.Luck(s),
		Probability: sc.Probability(s),
	}
}

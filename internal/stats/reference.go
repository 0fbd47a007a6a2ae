package stats

import (
	"fmt"
	"math/big"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

// ReferenceExpectedDraws computes E(min, max, target) exactly by tracking the
// probability of landing on every cumulative total below target and the
// expected draws taken to get there. It is quadratic and meant as an oracle
// for ExpectedDraws. Requires min >= 1.
func ReferenceExpectedDraws(minCount, maxCount, target int) (*big.Rat, error) {
	if minCount < 1 || maxCount < minCount {
		return nil, fmt.Errorf(ErrFmtRange, domain.ErrInvalidRange, minCount, maxCount)
	}
	if target <= 0 {
		return new(big.Rat), nil
	}

	width := int64(maxCount - minCount + 1)
	one := big.NewRat(1, 1)

	// hit[n]: probability the running total ever equals n.
	// steps[n]: expected draws taken, given the total lands on n.
	hit := make([]*big.Rat, target)
	steps := make([]*big.Rat, target)
	hit[0], steps[0] = big.NewRat(1, 1), new(big.Rat)

	for n := 1; n < target; n++ {
		mass, weighted := new(big.Rat), new(big.Rat)
		for k := minCount; k <= maxCount && k <= n; k++ {
			prev := n - k
			mass.Add(mass, hit[prev])
			term := new(big.Rat).Add(steps[prev], one)
			weighted.Add(weighted, term.Mul(term, hit[prev]))
		}
		hit[n] = new(big.Rat).Quo(mass, big.NewRat(width, 1))
		steps[n] = new(big.Rat)
		if mass.Sign() != 0 {
			steps[n].Quo(weighted, mass)
		}
	}

	expected := new(big.Rat)
	for pos := 0; pos < target; pos++ {
		crossing := int64(0)
		for k := minCount; k <= maxCount; k++ {
			if pos+k >= target {
				crossing++
			}
		}
		if crossing == 0 || hit[pos].Sign() == 0 {
			continue
		}
		term := new(big.Rat).Add(steps[pos], one)
		term.Mul(term, hit[pos])
		term.Mul(term, big.NewRat(crossing, width))
		expected.Add(expected, term)
	}
	return expected, nil
}

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

// NegativeBinomial counts failures before the R-th success with success
// probability P per trial. R may be any positive real.
type NegativeBinomial struct {
	R float64
	P float64
}

// NewNegativeBinomial validates the parameters.
func NewNegativeBinomial(r, p float64) (NegativeBinomial, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return NegativeBinomial{}, fmt.Errorf(ErrFmtShape, domain.ErrInvalidDistribution, r)
	}
	if math.IsNaN(p) || p <= 0 || p > 1 {
		return NegativeBinomial{}, fmt.Errorf(ErrFmtSuccessProb, domain.ErrInvalidDistribution, p)
	}
	return NegativeBinomial{R: r, P: p}, nil
}

// PMF is the probability of exactly k failures.
func (d NegativeBinomial) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	if d.P == 1 {
		if k == 0 {
			return 1
		}
		return 0
	}
	kf := float64(k)
	lg1, _ := math.Lgamma(kf + d.R)
	lg2, _ := math.Lgamma(kf + 1)
	lg3, _ := math.Lgamma(d.R)
	return math.Exp(lg1 - lg2 - lg3 + d.R*math.Log(d.P) + kf*math.Log1p(-d.P))
}

// CDF is the probability of at most floor(x) failures.
func (d NegativeBinomial) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if d.P == 1 {
		return 1
	}
	return mathext.RegIncBeta(d.R, math.Floor(x)+1, d.P)
}

// Mean is the expected number of failures.
func (d NegativeBinomial) Mean() float64 {
	return d.R * (1 - d.P) / d.P
}

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

func TestNegativeBinomial_Invalid(t *testing.T) {
	tests := []struct {
		name string
		r, p float64
	}{
		{"zero shape", 0, 0.5},
		{"negative shape", -1, 0.5},
		{"nan shape", math.NaN(), 0.5},
		{"inf shape", math.Inf(1), 0.5},
		{"zero p", 3, 0},
		{"p above one", 3, 1.5},
		{"nan p", 3, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNegativeBinomial(tt.r, tt.p)
			assert.ErrorIs(t, err, domain.ErrInvalidDistribution)
		})
	}
}

func TestNegativeBinomial_Values(t *testing.T) {
	d, err := NewNegativeBinomial(7, 0.5)
	require.NoError(t, err)

	assert.InDelta(t, 9908.0/16384.0, d.CDF(7), 1e-12)
	assert.InDelta(t, 9908.0/16384.0, d.CDF(7.9), 1e-12)
	assert.Zero(t, d.CDF(-0.5))
	assert.Zero(t, d.PMF(-1))
	assert.InDelta(t, 1.0/128.0, d.PMF(0), 1e-15)
	assert.InDelta(t, 7.0, d.Mean(), 1e-12)

	d3, err := NewNegativeBinomial(3, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, d3.PMF(0), 1e-15)
	assert.InDelta(t, 0.125, d3.CDF(0), 1e-12)
}

func TestNegativeBinomial_CDFIsPMFSum(t *testing.T) {
	d, err := NewNegativeBinomial(36.04, 20.0/423.0)
	require.NoError(t, err)

	sum := 0.0
	for k := 0; k <= 900; k++ {
		sum += d.PMF(k)
		if k > 0 && k%100 == 0 {
			assert.InEpsilon(t, sum, d.CDF(float64(k)), 1e-8, "k=%d", k)
		}
	}
}

func TestNegativeBinomial_Degenerate(t *testing.T) {
	d, err := NewNegativeBinomial(4, 1)
	require.NoError(t, err)

	assert.Equal(t, 1.0, d.PMF(0))
	assert.Equal(t, 0.0, d.PMF(3))
	assert.Equal(t, 1.0, d.CDF(0))
	assert.Equal(t, 0.0, d.CDF(-1))
}

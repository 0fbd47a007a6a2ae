package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/drop"
	"github.com/osse101/DropLuck_Go/internal/farm"
)

func TestRangedModel_PearlFixture(t *testing.T) {
	_, m, err := BarterScenario(170, 10, MustExpectedDrawsSolver())
	require.NoError(t, err)

	dist, ok := m.Distribution()
	require.True(t, ok)
	assert.InDelta(t, 36.04, dist.R, 1e-9)
	assert.InDelta(t, 20.0/423.0, dist.P, 1e-15)

	assert.InEpsilon(t, 6.713608e-10, m.Luck(239, 39), 1e-5)
}

func TestBinaryModel_RodFixture(t *testing.T) {
	_, m, err := BlazeScenario(211)
	require.NoError(t, err)

	assert.InEpsilon(t, 8.791427e-12, m.Luck(305), 1e-5)
	assert.InEpsilon(t, 3.416533e-12, m.Probability(305), 1e-5)
}

func TestScorer_StreamFixture(t *testing.T) {
	scorer, err := SpeedrunScorer(220, 10, 154, MustExpectedDrawsSolver())
	require.NoError(t, err)

	s := domain.StreamSummary{
		Runs:               22,
		RangedDraws:        937,
		RangedSuccesses:    4,
		RangedTarget:       220,
		RangedTargetPerRun: 10,
		BinaryDraws:        308,
		BinaryTarget:       154,
	}

	assert.InEpsilon(t, 0.5016436716, scorer.RangedLuck(s), 1e-5)
	assert.InEpsilon(t, 0.5227134025, scorer.BinaryLuck(s), 1e-5)
	assert.InEpsilon(t, 0.2622158704, scorer.Luck(s), 1e-5)
	assert.InEpsilon(t, 0.0028413877, scorer.RangedProbability(s), 1e-5)
	assert.InEpsilon(t, 0.0227134025, scorer.BinaryProbability(s), 1e-5)

	scored := scorer.Score(s)
	assert.Equal(t, s, scored.Summary)
	assert.Equal(t, scorer.Luck(s), scored.Luck)
	assert.Equal(t, scorer.Probability(s), scored.Probability)

	// Scoring is a pure function of the summary.
	assert.Equal(t, scored, scorer.Score(s))
}

func TestIdentityModels(t *testing.T) {
	_, ranged, err := BarterScenario(0, 0, MustExpectedDrawsSolver())
	require.NoError(t, err)
	assert.True(t, ranged.IsIdentity())
	assert.Equal(t, 1.0, ranged.Luck(500, 3))
	assert.Equal(t, 0.0, ranged.Probability(500, 3))
	_, ok := ranged.Distribution()
	assert.False(t, ok)

	_, binary, err := BlazeScenario(0)
	require.NoError(t, err)
	assert.True(t, binary.IsIdentity())
	assert.Equal(t, 1.0, binary.Luck(12))
	assert.Equal(t, 0.0, binary.Probability(12))
}

func TestScorer_ZeroTargetSummary(t *testing.T) {
	scorer, err := SpeedrunScorer(170, 10, 0, MustExpectedDrawsSolver())
	require.NoError(t, err)

	s := domain.StreamSummary{Runs: 17, RangedDraws: 239, RangedSuccesses: 39, RangedTarget: 170, RangedTargetPerRun: 10}
	assert.Equal(t, 1.0, scorer.BinaryLuck(s))
	assert.Equal(t, 0.0, scorer.BinaryProbability(s))
	assert.InEpsilon(t, scorer.RangedLuck(s), scorer.Luck(s), 1e-12)
	assert.Equal(t, 0.0, scorer.Probability(s))

	assert.Equal(t, 1.0, scorer.Luck(domain.StreamSummary{}))
}

func TestModelErrors(t *testing.T) {
	solver := MustExpectedDrawsSolver()

	_, _, err := BarterScenario(100, 0, solver)
	assert.ErrorIs(t, err, domain.ErrInvalidDistribution)

	_, err = NewRangedModel(catalogue.Blaze(), domain.ItemEnderPearl, 10, 10, solver)
	assert.ErrorIs(t, err, domain.ErrItemNotInCatalogue)

	// blaze rods have min 0 max 1, which the solver handles; a 0..0 range does not.
	zero := catalogue.New("z", domain.DropEntry{Item: "dud", Weight: 1, MinCount: 0, MaxCount: 0})
	_, err = NewRangedModel(zero, "dud", 10, 10, solver)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = NewBinaryModel(zero, "dud", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidDistribution)

	_, err = NewBinaryModel(catalogue.Barter(), domain.ItemBlazeRod, 5)
	assert.ErrorIs(t, err, domain.ErrItemNotInCatalogue)
}

func TestModelsMatchSimulatedMeans(t *testing.T) {
	solver := MustExpectedDrawsSolver()
	_, ranged, err := BarterScenario(10, 10, solver)
	require.NoError(t, err)
	_, binary, err := BlazeScenario(7)
	require.NoError(t, err)

	pearls, err := drop.NewSampler(catalogue.Barter(), rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	rods, err := drop.NewSampler(catalogue.Blaze(), rand.New(rand.NewSource(12)))
	require.NoError(t, err)
	farmers := farm.Farmers{
		Ranged: farm.Farmer{Drawer: pearls, Item: domain.ItemEnderPearl},
		Binary: farm.Farmer{Drawer: rods, Item: domain.ItemBlazeRod},
	}

	const samples = 20000
	targets := []domain.RunTarget{{Ranged: 10, Binary: 7}}
	var failures, extraFights float64
	for i := 0; i < samples; i++ {
		s := farm.SimulateSummary(farmers, targets)
		failures += float64(s.RangedDraws - s.RangedSuccesses)
		extraFights += float64(s.BinaryDraws - s.BinaryTarget)
	}

	rd, _ := ranged.Distribution()
	bd, _ := binary.Distribution()
	assert.InDelta(t, rd.Mean(), failures/samples, 1.5)
	assert.InDelta(t, bd.Mean(), extraFights/samples, 0.15)
}

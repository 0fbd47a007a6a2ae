package farm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/drop"
)

// scripted returns a fixed sequence of draws.
type scripted struct {
	draws []domain.DrawResult
	i     int
}

func (s *scripted) Sample() domain.DrawResult {
	r := s.draws[s.i]
	s.i++
	return r
}

func pearl(n int) domain.DrawResult { return domain.DrawResult{Item: domain.ItemEnderPearl, Count: n} }
func junk() domain.DrawResult       { return domain.DrawResult{Item: domain.ItemGravel, Count: 8} }

func TestFarmForItem_StopsAtMinimum(t *testing.T) {
	d := &scripted{draws: []domain.DrawResult{junk(), pearl(4), junk(), pearl(5), pearl(8)}}

	draws := FarmForItem(d, domain.ItemEnderPearl, 9)
	require.Len(t, draws, 4)

	trace := Trace{Item: domain.ItemEnderPearl, Draws: draws}
	assert.Equal(t, 4, trace.Total())
	assert.Equal(t, 2, trace.Successful())
	assert.Equal(t, 9, trace.Collected())
}

func TestFarmForItem_ZeroMinimum(t *testing.T) {
	d := &scripted{}
	assert.Empty(t, FarmForItem(d, domain.ItemEnderPearl, 0))
	assert.Zero(t, d.i)
}

func TestFarmForItem_ZeroCountSuccessesKeepGoing(t *testing.T) {
	rod := func(n int) domain.DrawResult { return domain.DrawResult{Item: domain.ItemBlazeRod, Count: n} }
	d := &scripted{draws: []domain.DrawResult{rod(0), rod(0), rod(1), rod(1)}}

	trace := Trace{Item: domain.ItemBlazeRod, Draws: FarmForItem(d, domain.ItemBlazeRod, 2)}
	assert.Equal(t, 4, trace.Total())
	assert.Equal(t, 4, trace.Successful())
	assert.Equal(t, 2, trace.Collected())
}

func seededFarmers(t *testing.T, seed int64) Farmers {
	t.Helper()
	pearls, err := drop.NewSampler(catalogue.Barter(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	rods, err := drop.NewSampler(catalogue.Blaze(), rand.New(rand.NewSource(seed+1)))
	require.NoError(t, err)
	return Farmers{
		Ranged: Farmer{Drawer: pearls, Item: domain.ItemEnderPearl},
		Binary: Farmer{Drawer: rods, Item: domain.ItemBlazeRod},
	}
}

func TestSimulateStream_Summary(t *testing.T) {
	f := seededFarmers(t, 99)
	targets := []domain.RunTarget{{Ranged: 10, Binary: 7}, {Ranged: 12, Binary: 0}, {Ranged: 0, Binary: 3}}

	s := SimulateStream(f, targets)
	require.Len(t, s.Runs, 3)
	assert.Equal(t, targets, s.Targets)

	sum := s.Summary()
	assert.Equal(t, 3, sum.Runs)
	assert.Equal(t, 22, sum.RangedTarget)
	assert.Equal(t, 7, sum.RangedTargetPerRun)
	assert.Equal(t, 10, sum.BinaryTarget)

	for i, run := range s.Runs {
		assert.GreaterOrEqual(t, run.Ranged.Collected(), targets[i].Ranged)
		assert.GreaterOrEqual(t, run.Binary.Collected(), targets[i].Binary)
	}
	assert.Empty(t, s.Runs[1].Binary.Draws)
	assert.Empty(t, s.Runs[2].Ranged.Draws)

	assert.GreaterOrEqual(t, sum.RangedCollected, sum.RangedTarget)
	assert.GreaterOrEqual(t, sum.RangedDraws, sum.RangedSuccesses)
	assert.GreaterOrEqual(t, sum.BinaryDraws, sum.BinarySuccesses)
	// Every blaze draw selects the rod entry, whatever its count.
	assert.Equal(t, sum.BinaryDraws, sum.BinarySuccesses)
	assert.GreaterOrEqual(t, sum.BinaryCollected, sum.BinaryTarget)
}

func TestSimulateSummary_Deterministic(t *testing.T) {
	targets := []domain.RunTarget{{Ranged: 10, Binary: 7}}
	a := SimulateSummary(seededFarmers(t, 5), targets)
	b := SimulateSummary(seededFarmers(t, 5), targets)
	assert.Equal(t, a, b)
}

func TestEmptyStream(t *testing.T) {
	sum := Stream{}.Summary()
	assert.Equal(t, domain.StreamSummary{}, sum)
}

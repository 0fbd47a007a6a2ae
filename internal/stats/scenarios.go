package stats

import (
	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/domain"
)

// BarterScenario is the piglin barter table with the ender pearl model for
// total pearls collected perRun at a time.
func BarterScenario(total, perRun int, solver *ExpectedDrawsSolver) (catalogue.Catalogue, RangedModel, error) {
	cat := catalogue.Barter()
	m, err := NewRangedModel(cat, domain.ItemEnderPearl, total, perRun, solver)
	return cat, m, err
}

// BlazeScenario is the blaze table with the blaze rod model for total rods.
func BlazeScenario(total int) (catalogue.Catalogue, BinaryModel, error) {
	cat := catalogue.Blaze()
	m, err := NewBinaryModel(cat, domain.ItemBlazeRod, total)
	return cat, m, err
}

// SpeedrunScorer builds the scorer for the default pearl and rod scenarios.
func SpeedrunScorer(pearls, pearlsPerRun, rods int, solver *ExpectedDrawsSolver) (Scorer, error) {
	_, ranged, err := BarterScenario(pearls, pearlsPerRun, solver)
	if err != nil {
		return Scorer{}, err
	}
	_, binary, err := BlazeScenario(rods)
	if err != nil {
		return Scorer{}, err
	}
	return Scorer{Ranged: ranged, Binary: binary}, nil
}

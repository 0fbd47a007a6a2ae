package farm

import "github.com/osse101/DropLuck_Go/internal/domain"

// Farmer binds a drawer to the item it is farmed for.
type Farmer struct {
	Drawer Drawer
	Item   domain.Item
}

// Farm runs FarmForItem for this farmer.
func (f Farmer) Farm(minimum int) Trace {
	return Trace{Item: f.Item, Draws: FarmForItem(f.Drawer, f.Item, minimum)}
}

// Farmers is the pair of farms every run visits: the ranged-count item
// (pearls from bartering) and the binary item (rods from blazes).
type Farmers struct {
	Ranged Farmer
	Binary Farmer
}

// Run is one attempt: the ranged item is farmed to its target, then the binary one.
type Run struct {
	Ranged Trace
	Binary Trace
}

// SimulateRun farms both items once to target.
func SimulateRun(f Farmers, target domain.RunTarget) Run {
	return Run{
		Ranged: f.Ranged.Farm(target.Ranged),
		Binary: f.Binary.Farm(target.Binary),
	}
}

// Stream is a sequence of runs, index-aligned with the targets that produced them.
type Stream struct {
	Runs    []Run
	Targets []domain.RunTarget
}

// SimulateStream simulates one run per target, in order.
func SimulateStream(f Farmers, targets []domain.RunTarget) Stream {
	runs := make([]Run, len(targets))
	for i, t := range targets {
		runs[i] = SimulateRun(f, t)
	}
	return Stream{Runs: runs, Targets: targets}
}

// Summary reduces the stream to its numeric digest.
func (s Stream) Summary() domain.StreamSummary {
	sum := domain.StreamSummary{Runs: len(s.Runs)}
	for _, r := range s.Runs {
		sum.RangedDraws += r.Ranged.Total()
		sum.RangedSuccesses += r.Ranged.Successful()
		sum.RangedCollected += r.Ranged.Collected()
		sum.BinaryDraws += r.Binary.Total()
		sum.BinarySuccesses += r.Binary.Successful()
		sum.BinaryCollected += r.Binary.Collected()
	}
	for _, t := range s.Targets {
		sum.RangedTarget += t.Ranged
		sum.BinaryTarget += t.Binary
	}
	if len(s.Targets) > 0 {
		sum.RangedTargetPerRun = sum.RangedTarget / len(s.Targets)
	}
	return sum
}

// SimulateSummary simulates a stream and returns only its summary.
func SimulateSummary(f Farmers, targets []domain.RunTarget) domain.StreamSummary {
	return SimulateStream(f, targets).Summary()
}

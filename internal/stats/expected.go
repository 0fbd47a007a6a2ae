package stats

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

type countRange struct {
	min, max int
}

// drawTable holds E(t) for t in [0, len(e)) and its running prefix sums.
type drawTable struct {
	e      []float64
	prefix []float64
}

// ExpectedDrawsSolver computes the expected number of successful draws needed
// to accumulate a target when each success yields a uniform count in
// [min, max]. Tables are built bottom-up and shared across calls.
// Safe for concurrent use.
type ExpectedDrawsSolver struct {
	mu     sync.Mutex
	tables *lru.Cache[countRange, *drawTable]
}

// NewExpectedDrawsSolver creates a solver that keeps up to size tables.
func NewExpectedDrawsSolver(size int) (*ExpectedDrawsSolver, error) {
	cache, err := lru.New[countRange, *drawTable](size)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtCacheSize, size, err)
	}
	return &ExpectedDrawsSolver{tables: cache}, nil
}

// MustExpectedDrawsSolver is NewExpectedDrawsSolver with the default size.
func MustExpectedDrawsSolver() *ExpectedDrawsSolver {
	s, err := NewExpectedDrawsSolver(DefaultSolverCacheSize)
	if err != nil {
		panic(err)
	}
	return s
}

// ExpectedDraws solves E(t) = 0 for t <= 0 and
// E(t) = 1 + (1/n) * sum_{k=min}^{max} E(t-k), n = max-min+1.
// With min == 0 the k = 0 term is E(t) itself and is moved to the left.
func (s *ExpectedDrawsSolver) ExpectedDraws(minCount, maxCount, target int) (float64, error) {
	if minCount < 0 || maxCount < minCount || maxCount == 0 {
		return 0, fmt.Errorf(ErrFmtRange, domain.ErrInvalidRange, minCount, maxCount)
	}
	if target <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := countRange{min: minCount, max: maxCount}
	table, ok := s.tables.Get(key)
	if !ok {
		table = &drawTable{e: []float64{0}, prefix: []float64{0}}
		s.tables.Add(key, table)
	}
	table.extend(minCount, maxCount, target)
	return table.e[target], nil
}

// CachedRanges reports how many (min, max) tables are held.
func (s *ExpectedDrawsSolver) CachedRanges() int {
	return s.tables.Len()
}

func (t *drawTable) extend(minCount, maxCount, target int) {
	n := float64(maxCount - minCount + 1)

	// sum of E(j) for j in [lo, hi], E(j) = 0 for j <= 0
	window := func(lo, hi int) float64 {
		if hi < 1 {
			return 0
		}
		if lo < 1 {
			lo = 1
		}
		return t.prefix[hi] - t.prefix[lo-1]
	}

	for x := len(t.e); x <= target; x++ {
		var v float64
		if minCount == 0 {
			v = (n + window(x-maxCount, x-1)) / (n - 1)
		} else {
			v = 1 + window(x-maxCount, x-minCount)/n
		}
		t.e = append(t.e, v)
		t.prefix = append(t.prefix, t.prefix[x-1]+v)
	}
}

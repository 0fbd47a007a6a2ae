package simulation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/validation"
)

// Goals is the set of streams to simulate, each a list of per-run targets.
type Goals struct {
	Streams [][]domain.RunTarget `json:"streams" yaml:"streams"`
}

// Totals aggregates targets across every stream of the goals.
type Totals struct {
	Ranged       int
	Binary       int
	Runs         int
	RangedPerRun int
}

// Totals sums targets over all streams. RangedPerRun is the integer mean.
func (g Goals) Totals() Totals {
	var t Totals
	for _, stream := range g.Streams {
		for _, run := range stream {
			t.Ranged += run.Ranged
			t.Binary += run.Binary
			t.Runs++
		}
	}
	if t.Runs > 0 {
		t.RangedPerRun = t.Ranged / t.Runs
	}
	return t
}

// Validate requires at least one stream, no empty streams and
// non-negative targets.
func (g Goals) Validate() error {
	if len(g.Streams) == 0 {
		return fmt.Errorf(ErrFmtNoStreams, domain.ErrInvalidGoals)
	}
	for i, stream := range g.Streams {
		if len(stream) == 0 {
			return fmt.Errorf(ErrFmtEmptyStream, domain.ErrInvalidGoals, i)
		}
		for j, run := range stream {
			if err := validation.Struct(run); err != nil {
				return fmt.Errorf(ErrFmtRunTarget, domain.ErrInvalidGoals, i, j, err)
			}
		}
	}
	return nil
}

// Builder assembles Goals fluently.
type Builder struct {
	streams [][]domain.RunTarget
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddStream starts a new, empty stream.
func (b *Builder) AddStream() *Builder {
	b.streams = append(b.streams, nil)
	return b
}

// AddRun appends a run to the current stream, starting one if needed.
func (b *Builder) AddRun(target domain.RunTarget) *Builder {
	if len(b.streams) == 0 {
		b.AddStream()
	}
	last := len(b.streams) - 1
	b.streams[last] = append(b.streams[last], target)
	return b
}

// AddRuns appends n identical runs.
func (b *Builder) AddRuns(n int, target domain.RunTarget) *Builder {
	for i := 0; i < n; i++ {
		b.AddRun(target)
	}
	return b
}

// Goals returns a copy of what has been built.
func (b *Builder) Goals() Goals {
	streams := make([][]domain.RunTarget, len(b.streams))
	for i, s := range b.streams {
		streams[i] = append([]domain.RunTarget(nil), s...)
	}
	return Goals{Streams: streams}
}

// RepeatStreams builds goals with n copies of the same stream.
func RepeatStreams(n int, targets []domain.RunTarget) Goals {
	b := NewBuilder()
	for i := 0; i < n; i++ {
		b.AddStream()
		for _, t := range targets {
			b.AddRun(t)
		}
	}
	return b.Goals()
}

// LoadGoals reads and validates a YAML goals file.
func LoadGoals(path string) (Goals, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Goals{}, fmt.Errorf(ErrFmtReadGoals, path, err)
	}
	return ParseGoals(path, data)
}

// ParseGoals is LoadGoals for in-memory documents.
func ParseGoals(name string, data []byte) (Goals, error) {
	if err := validation.NewSchemaValidator().ValidateBytes(data, validation.SchemaGoals); err != nil {
		return Goals{}, fmt.Errorf(ErrFmtSchemaGoals, name, err)
	}
	var g Goals
	if err := yaml.Unmarshal(data, &g); err != nil {
		return Goals{}, fmt.Errorf(ErrFmtParseGoals, name, err)
	}
	if err := g.Validate(); err != nil {
		return Goals{}, err
	}
	return g, nil
}

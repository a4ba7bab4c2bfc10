package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// Default bounds of the integer weight drawn for every edge.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 9
)

// WeightFunc produces the weight of the edge from → to. It is called once
// per directed edge on every (re)build, in row-major order of from and
// adjacency order of to, so a seeded rng yields a reproducible grid.
// Returned weights must be positive.
type WeightFunc func(from, to *Cell, rng *rand.Rand) float64

// UniformTerrainWeight returns a WeightFunc drawing an integer uniformly in
// [min, max] and scaling it by the terrain cost of the destination cell.
// On all-Normal ground this is a plain [min, max] draw.
func UniformTerrainWeight(min, max int) WeightFunc {
	span := max - min + 1

	return func(_, to *Cell, rng *rand.Rand) float64 {
		return float64(min+rng.Intn(span)) * to.TerrainCost()
	}
}

// ConstantWeight returns a WeightFunc that always yields w, ignoring terrain.
// Useful for hand-built test grids.
func ConstantWeight(w float64) WeightFunc {
	return func(_, _ *Cell, _ *rand.Rand) float64 {
		return w
	}
}

// Option configures a Grid at construction.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the construction parameters of a Grid.
type Options struct {
	// Rand is the random source used by Weight. Defaults to a time-seeded source.
	Rand *rand.Rand

	// MinWeight and MaxWeight bound the default weight draw.
	MinWeight, MaxWeight int

	// Weight overrides the default UniformTerrainWeight(MinWeight, MaxWeight).
	Weight WeightFunc

	err error
}

// DefaultOptions returns the reference configuration: weights in [1,9],
// scaled by terrain cost, drawn from a time-seeded source.
func DefaultOptions() Options {
	return Options{
		MinWeight: DefaultMinWeight,
		MaxWeight: DefaultMaxWeight,
	}
}

// WithSeed seeds a private random source, making edge weights reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses rng as the random source. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithWeightRange sets the inclusive bounds of the default weight draw.
// Requires 1 ≤ min ≤ max; anything else is an ErrOptionViolation.
func WithWeightRange(min, max int) Option {
	return func(o *Options) {
		if min < 1 || max < min {
			o.err = fmt.Errorf("%w: weight range [%d,%d] needs 1 ≤ min ≤ max", ErrOptionViolation, min, max)
			return
		}
		o.MinWeight, o.MaxWeight = min, max
	}
}

// WithWeightFunc replaces the weight model. A nil fn is ignored.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

func (o *Options) finalize() {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Weight == nil {
		o.Weight = UniformTerrainWeight(o.MinWeight, o.MaxWeight)
	}
}

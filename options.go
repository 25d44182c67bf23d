package genart

import (
	"math/rand"

	"github.com/gogpu/gg"
)

// Option configures an Engine during creation.
//
// Example:
//
//	// Defaults: 30 individuals of 150 triangles, alpha 0.15
//	e, err := genart.NewEngine(target)
//
//	// Small deterministic engine for experiments
//	e, err := genart.NewEngine(target,
//	    genart.WithPopulationSize(8),
//	    genart.WithTriangleCount(20),
//	    genart.WithRand(rand.New(rand.NewSource(1))))
type Option func(*engineOptions)

type engineOptions struct {
	popSize    int
	triangles  int
	alpha      float64
	background gg.RGBA
	rng        *rand.Rand
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		popSize:    DefaultPopulationSize,
		triangles:  DefaultTriangleCount,
		alpha:      DefaultAlpha,
		background: gg.Black,
		rng:        nil, // seeded from the clock in NewEngine if unset
	}
}

// WithPopulationSize sets the number of individuals. The population size
// is fixed for the lifetime of the engine.
func WithPopulationSize(n int) Option {
	return func(o *engineOptions) { o.popSize = n }
}

// WithTriangleCount sets the number of triangle genes per chromosome.
func WithTriangleCount(n int) Option {
	return func(o *engineOptions) { o.triangles = n }
}

// WithAlpha sets the fixed alpha shared by every triangle for the whole
// run. Alpha is not evolved.
func WithAlpha(a float64) Option {
	return func(o *engineOptions) { o.alpha = a }
}

// WithBackground sets the canvas clear color used before every render.
func WithBackground(c gg.RGBA) Option {
	return func(o *engineOptions) { o.background = c }
}

// WithRand sets the engine's random source. The engine owns its generator
// and never touches process-global randomness; passing a seeded source
// makes a run reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) { o.rng = rng }
}

package genart

import (
	"math/rand"
)

// Chromosome is one candidate image: an ordered sequence of triangle genes
// (painter's algorithm draw order) plus a cached fitness score.
//
// Fitness is only meaningful after Evaluate; the engine re-evaluates every
// chromosome it modifies before the next comparison, so a stale score is
// never sorted against a fresh one.
type Chromosome struct {
	Genes   []Triangle
	Fitness int64
}

// newChromosome returns a chromosome with n uniformly random genes, all
// carrying the given fixed alpha.
func newChromosome(rng *rand.Rand, n int, alpha float64) Chromosome {
	c := Chromosome{Genes: make([]Triangle, n)}
	for i := range c.Genes {
		c.Genes[i] = randomTriangle(rng, alpha)
	}
	return c
}

// Render rasterizes the chromosome into rt and returns rt's RGB readback
// buffer. The buffer is reused by the next render on the same target.
func (c *Chromosome) Render(rt *RenderTarget) []uint8 {
	return rt.Render(c.Genes)
}

// Evaluate renders the chromosome and scores it against the target,
// caching and returning the fitness.
func (c *Chromosome) Evaluate(rt *RenderTarget, target *Target) int64 {
	c.Fitness = sumSquaredDiff(c.Render(rt), target.RGB())
	return c.Fitness
}

// MutateChange rewrites the chromosome wholesale: every vertex coordinate
// is independently replaced with a fresh uniform sample with probability
// 0.5, and each triangle's RGB channels are all replaced together with
// probability 0.5. Alpha is never touched.
func (c *Chromosome) MutateChange(rng *rand.Rand) {
	for i := range c.Genes {
		g := &c.Genes[i]
		for v := range g.V {
			if rng.Float64() < 0.5 {
				g.V[v].X = rng.Float64()
			}
			if rng.Float64() < 0.5 {
				g.V[v].Y = rng.Float64()
			}
		}
		if rng.Float64() < 0.5 {
			g.C.R = rng.Float64()
			g.C.G = rng.Float64()
			g.C.B = rng.Float64()
		}
	}
}

// MutateDisturb nudges the chromosome. For each triangle, with probability
// 0.25 every vertex coordinate is offset by an independent symmetric
// sample divided by magnitude; with probability 0.5 every RGB channel is
// offset by an independent symmetric sample scaled by 10 and divided by
// magnitude. A component pushed outside [0,1] is replaced with a fresh
// uniform sample, never clamped to the boundary.
//
// magnitude must be nonzero; small magnitudes mean violent disturbance.
// The engine draws it fresh from a wide symmetric range on every call.
func (c *Chromosome) MutateDisturb(rng *rand.Rand, magnitude float64) {
	for i := range c.Genes {
		g := &c.Genes[i]
		if rng.Float64() < 0.25 {
			for v := range g.V {
				g.V[v].X += symmetric(rng) / magnitude
				g.V[v].Y += symmetric(rng) / magnitude
			}
		}
		for v := range g.V {
			if !inUnit(g.V[v].X) {
				g.V[v].X = rng.Float64()
			}
			if !inUnit(g.V[v].Y) {
				g.V[v].Y = rng.Float64()
			}
		}
		if rng.Float64() < 0.5 {
			g.C.R += 10 * symmetric(rng) / magnitude
			g.C.G += 10 * symmetric(rng) / magnitude
			g.C.B += 10 * symmetric(rng) / magnitude
		}
		if !inUnit(g.C.R) {
			g.C.R = rng.Float64()
		}
		if !inUnit(g.C.G) {
			g.C.G = rng.Float64()
		}
		if !inUnit(g.C.B) {
			g.C.B = rng.Float64()
		}
	}
}

package genart

import (
	"math"
	"math/rand"
)

// Both crossover operators read two parents and write into an existing
// destination chromosome of the same gene count. Only vertex positions
// and RGB channels are copied; the destination keeps whatever alpha its
// genes already carry. Because gene i of the child only ever comes from
// gene i of a parent, a destination that aliases one of the parents is
// harmless.

// cutPoint draws the one-point crossover cut: the ceiling of a uniform
// draw scaled by n, an integer in [1, n]. A zero draw is the only way to
// get 0 and is bumped to 1.
func cutPoint(rng *rand.Rand, n int) int {
	p := int(math.Ceil(rng.Float64() * float64(n)))
	if p < 1 {
		p = 1
	}
	return p
}

// OnePointCrossover picks a cut point p in [1, n]: genes with index < p
// take their vertices and RGB from parent a, the rest from parent b.
func OnePointCrossover(rng *rand.Rand, a, b, dst *Chromosome) {
	onePointAt(cutPoint(rng, len(dst.Genes)), a, b, dst)
}

func onePointAt(p int, a, b, dst *Chromosome) {
	for i := range dst.Genes {
		src := &b.Genes[i]
		if i < p {
			src = &a.Genes[i]
		}
		dst.Genes[i].V = src.V
		dst.Genes[i].C.R = src.C.R
		dst.Genes[i].C.G = src.C.G
		dst.Genes[i].C.B = src.C.B
	}
}

// UniformCrossover flips a fair coin per vertex of every gene: the vertex
// and the gene's RGB are copied from parent a on heads, from parent b on
// tails. The RGB assignment is deliberately re-decided on every vertex
// flip, so the color that survives for a gene is the one chosen by its
// last vertex. This mirrors the historical behavior of the operator and
// is relied on by callers expecting identical offspring for a given
// random sequence.
func UniformCrossover(rng *rand.Rand, a, b, dst *Chromosome) {
	for i := range dst.Genes {
		// Copy both parent genes up front so the per-vertex color
		// re-assignment reads parent data even when dst aliases a parent.
		ga, gb := a.Genes[i], b.Genes[i]
		for v := range dst.Genes[i].V {
			src := &gb
			if rng.Float64() < 0.5 {
				src = &ga
			}
			dst.Genes[i].V[v] = src.V[v]
			dst.Genes[i].C.R = src.C.R
			dst.Genes[i].C.G = src.C.G
			dst.Genes[i].C.B = src.C.B
		}
	}
}

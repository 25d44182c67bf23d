package genart

import (
	"math/rand"

	"github.com/gogpu/gg"
)

// Triangle is one gene: three vertices in normalized [0,1]² canvas space
// and an RGBA fill color. The R, G and B channels evolve in [0,1]; the
// alpha channel is fixed at construction and never touched by any genetic
// operator.
type Triangle struct {
	V [3]gg.Point
	C gg.RGBA
}

// randomTriangle returns a triangle with uniformly sampled vertices and
// RGB color and the given fixed alpha.
func randomTriangle(rng *rand.Rand, alpha float64) Triangle {
	var t Triangle
	for i := range t.V {
		t.V[i] = gg.Pt(rng.Float64(), rng.Float64())
	}
	t.C = gg.RGBA{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: alpha}
	return t
}

// symmetric returns a uniform sample in (-1, 1).
func symmetric(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}

// inUnit reports whether v lies in [0, 1].
func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

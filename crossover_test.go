package genart

import (
	"math/rand"
	"testing"

	"github.com/gogpu/gg"
)

// markedChromosome builds a chromosome whose every vertex and channel
// encodes its own position plus a parent tag, so tests can tell exactly
// where each piece of an offspring came from.
func markedChromosome(n int, tag float64) Chromosome {
	c := Chromosome{Genes: make([]Triangle, n)}
	for i := range c.Genes {
		for v := range c.Genes[i].V {
			c.Genes[i].V[v] = gg.Pt(tag+float64(i)+float64(v)/10, tag+float64(i)+float64(v)/10+0.01)
		}
		c.Genes[i].C = gg.RGBA{
			R: tag + float64(i) + 0.1,
			G: tag + float64(i) + 0.2,
			B: tag + float64(i) + 0.3,
			A: DefaultAlpha,
		}
	}
	return c
}

func TestCutPointRange(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const n = 150
	seen := make(map[int]bool)
	for i := 0; i < 100000; i++ {
		p := cutPoint(rng, n)
		if p < 1 || p > n {
			t.Fatalf("cutPoint = %d, want [1, %d]", p, n)
		}
		seen[p] = true
	}
	// With 100k draws every value in [1,150] should appear.
	if len(seen) != n {
		t.Errorf("cutPoint covered %d of %d values", len(seen), n)
	}
}

func TestOnePointAtBoundaries(t *testing.T) {
	const n = 10
	a := markedChromosome(n, 100)
	b := markedChromosome(n, 200)

	t.Run("cut at N copies parent A", func(t *testing.T) {
		dst := markedChromosome(n, 300)
		onePointAt(n, &a, &b, &dst)
		for i := range dst.Genes {
			if dst.Genes[i].V != a.Genes[i].V {
				t.Fatalf("gene %d vertices not from parent A", i)
			}
			if dst.Genes[i].C.R != a.Genes[i].C.R {
				t.Fatalf("gene %d color not from parent A", i)
			}
		}
	})

	t.Run("cut at 1 takes only gene 0 from A", func(t *testing.T) {
		dst := markedChromosome(n, 300)
		onePointAt(1, &a, &b, &dst)
		if dst.Genes[0].V != a.Genes[0].V {
			t.Fatal("gene 0 not from parent A")
		}
		for i := 1; i < n; i++ {
			if dst.Genes[i].V != b.Genes[i].V || dst.Genes[i].C.B != b.Genes[i].C.B {
				t.Fatalf("gene %d not from parent B", i)
			}
		}
	})
}

func TestOnePointCrossoverPreservesDestinationAlpha(t *testing.T) {
	const n = 6
	rng := rand.New(rand.NewSource(9))
	a := markedChromosome(n, 100)
	b := markedChromosome(n, 200)
	dst := Chromosome{Genes: make([]Triangle, n)}
	for i := range dst.Genes {
		dst.Genes[i].C.A = 0.42
	}
	OnePointCrossover(rng, &a, &b, &dst)
	for i := range dst.Genes {
		if dst.Genes[i].C.A != 0.42 {
			t.Fatalf("gene %d alpha overwritten: %v", i, dst.Genes[i].C.A)
		}
	}
}

func TestUniformCrossoverPerVertexFlips(t *testing.T) {
	const n = 20
	const seed = 10
	a := markedChromosome(n, 100)
	b := markedChromosome(n, 200)
	dst := markedChromosome(n, 300)
	UniformCrossover(rand.New(rand.NewSource(seed)), &a, &b, &dst)

	// Replay the identical flip sequence to predict each vertex's source
	// and the color that the last flip of each gene leaves behind.
	replay := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		var lastSrc *Chromosome
		for v := 0; v < 3; v++ {
			src := &b
			if replay.Float64() < 0.5 {
				src = &a
			}
			lastSrc = src
			if dst.Genes[i].V[v] != src.Genes[i].V[v] {
				t.Fatalf("gene %d vertex %d not from predicted parent", i, v)
			}
		}
		// The color re-decision on every vertex flip means the last
		// vertex's parent supplies the surviving RGB.
		want := lastSrc.Genes[i].C
		got := dst.Genes[i].C
		if got.R != want.R || got.G != want.G || got.B != want.B {
			t.Fatalf("gene %d color not from last flip's parent: got %+v want %+v", i, got, want)
		}
	}
}

func TestUniformCrossoverGeneIndependence(t *testing.T) {
	// Gene i of the child only ever reads gene i of a parent: seed the
	// parents with per-index markers and verify no cross-index leakage.
	const n = 12
	rng := rand.New(rand.NewSource(11))
	a := markedChromosome(n, 100)
	b := markedChromosome(n, 200)
	dst := markedChromosome(n, 300)
	UniformCrossover(rng, &a, &b, &dst)
	for i := range dst.Genes {
		for v := range dst.Genes[i].V {
			got := dst.Genes[i].V[v]
			if got != a.Genes[i].V[v] && got != b.Genes[i].V[v] {
				t.Fatalf("gene %d vertex %d came from neither parent's gene %d", i, v, i)
			}
		}
	}
}

func TestCrossoverSafeWhenDestinationAliasesParent(t *testing.T) {
	const n = 8
	rng := rand.New(rand.NewSource(12))
	a := markedChromosome(n, 100)
	b := markedChromosome(n, 200)
	aCopy := markedChromosome(n, 100)

	// dst == a: gene i only ever self-assigns from gene i, so parent A
	// must read as if untouched.
	onePointAt(4, &a, &b, &a)
	for i := 0; i < 4; i++ {
		if a.Genes[i] != aCopy.Genes[i] {
			t.Fatalf("gene %d corrupted by aliased crossover", i)
		}
	}
	for i := 4; i < n; i++ {
		if a.Genes[i].V != b.Genes[i].V {
			t.Fatalf("gene %d not taken from parent B", i)
		}
	}

	a = markedChromosome(n, 100)
	UniformCrossover(rng, &a, &b, &a)
	for i := range a.Genes {
		for v := range a.Genes[i].V {
			got := a.Genes[i].V[v]
			if got != aCopy.Genes[i].V[v] && got != b.Genes[i].V[v] {
				t.Fatalf("gene %d vertex %d corrupted by aliased crossover", i, v)
			}
		}
	}
}

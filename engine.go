package genart

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
	"time"
)

// Tunables of the evolution loop. Population size, triangle count and
// alpha are defaults overridable per engine; the probabilities are part
// of the algorithm.
const (
	DefaultPopulationSize = 30
	DefaultTriangleCount  = 150
	DefaultAlpha          = 0.15

	// Per replaced slot: crossover with probability crossoverProb,
	// otherwise mutation; a mutation is a disturbance with probability
	// disturbProb, otherwise a wholesale change.
	crossoverProb = 0.95
	disturbProb   = 0.95

	// Fraction of the population preserved verbatim each generation.
	eliteFraction = 0.25

	// Disturbance magnitudes are drawn from (-disturbScale, disturbScale).
	disturbScale = 500.0
)

// Engine owns a population of chromosomes and evolves it toward a target
// image, one generation per Tick. It owns its random generator, its
// render target and its population buffer; nothing global is touched and
// no other component writes chromosome genes.
//
// Engine is not safe for concurrent use: Tick, Best and RenderBest share
// one rasterization surface.
type Engine struct {
	opts       engineOptions
	rng        *rand.Rand
	rt         *RenderTarget
	target     *Target
	pop        []Chromosome
	generation int
	history    History
}

// NewEngine creates an engine for the given target, randomly initializes
// the population, scores it and sorts it so the best individual is at
// slot 0.
func NewEngine(target *Target, options ...Option) (*Engine, error) {
	opts := defaultEngineOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if target == nil {
		return nil, fmt.Errorf("engine: nil target")
	}
	if opts.popSize < 2 {
		return nil, fmt.Errorf("engine: population size %d, need at least 2", opts.popSize)
	}
	if opts.triangles < 1 {
		return nil, fmt.Errorf("engine: triangle count %d, need at least 1", opts.triangles)
	}
	if opts.alpha < 0 || opts.alpha > 1 {
		return nil, fmt.Errorf("engine: alpha %v outside [0,1]", opts.alpha)
	}
	rng := opts.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rt, err := NewRenderTarget(target.Width(), target.Height(), opts.background)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		opts:   opts,
		rng:    rng,
		rt:     rt,
		target: target,
		pop:    make([]Chromosome, opts.popSize),
	}
	for i := range e.pop {
		e.pop[i] = newChromosome(rng, opts.triangles, opts.alpha)
		e.pop[i].Evaluate(rt, target)
	}
	e.sortByFitness()

	Logger().Info("engine created",
		"population", opts.popSize,
		"triangles", opts.triangles,
		"alpha", opts.alpha,
		"canvas", fmt.Sprintf("%dx%d", target.Width(), target.Height()))
	return e, nil
}

// Tick advances the population by one generation: sort ascending by
// fitness, keep the elite quarter untouched, overwrite every remaining
// slot with crossover offspring or a mutant, and re-score each modified
// slot. Because the elite (including the best individual) survives
// verbatim, the best fitness never increases across ticks.
func (e *Engine) Tick() {
	e.sortByFitness()
	for i := eliteCount(len(e.pop)); i < len(e.pop); i++ {
		if e.rng.Float64() < crossoverProb {
			// Parents are uniform over the whole population, with
			// replacement; elites and duplicates are allowed, and the
			// pick is deliberately not fitness-weighted.
			a := &e.pop[e.rng.Intn(len(e.pop))]
			b := &e.pop[e.rng.Intn(len(e.pop))]
			if e.rng.Float64() < 0.5 {
				OnePointCrossover(e.rng, a, b, &e.pop[i])
			} else {
				UniformCrossover(e.rng, a, b, &e.pop[i])
			}
		} else if e.rng.Float64() < disturbProb {
			e.pop[i].MutateDisturb(e.rng, e.disturbMagnitude())
		} else {
			e.pop[i].MutateChange(e.rng)
		}
		e.pop[i].Evaluate(e.rt, e.target)
	}
	e.generation++

	best, mean := e.fitnessStats()
	e.history.Record(e.generation, best, mean)
	Logger().Debug("generation", "n", e.generation, "best", best, "mean", mean)
}

// Best returns the best individual of the last sort. It stays valid until
// the next Tick; callers must not modify its genes.
func (e *Engine) Best() *Chromosome {
	return &e.pop[0]
}

// RenderBest rasterizes the current best individual and returns an
// independent image for display. It contributes nothing back to the
// evolution.
func (e *Engine) RenderBest() *image.RGBA {
	return e.rt.Image(e.pop[0].Genes)
}

// Generation returns the number of completed ticks.
func (e *Engine) Generation() int { return e.generation }

// BestFitness returns the cached fitness of the best individual.
func (e *Engine) BestFitness() int64 { return e.pop[0].Fitness }

// PopulationSize returns the fixed number of individuals.
func (e *Engine) PopulationSize() int { return len(e.pop) }

// History returns the recorded per-generation fitness statistics.
func (e *Engine) History() *History { return &e.history }

func (e *Engine) sortByFitness() {
	sort.Slice(e.pop, func(i, j int) bool {
		return e.pop[i].Fitness < e.pop[j].Fitness
	})
}

// disturbMagnitude draws a fresh scale from (-disturbScale, disturbScale),
// resampling the (measure-zero) case of exactly 0 since the scale divides
// mutation offsets.
func (e *Engine) disturbMagnitude() float64 {
	for {
		if m := disturbScale * symmetric(e.rng); m != 0 {
			return m
		}
	}
}

// fitnessStats returns the minimum and mean cached fitness.
func (e *Engine) fitnessStats() (best int64, mean float64) {
	best = e.pop[0].Fitness
	var sum int64
	for i := range e.pop {
		if e.pop[i].Fitness < best {
			best = e.pop[i].Fitness
		}
		sum += e.pop[i].Fitness
	}
	return best, float64(sum) / float64(len(e.pop))
}

// eliteCount is the number of top slots preserved each generation,
// ceil(n * eliteFraction).
func eliteCount(n int) int {
	return int(math.Ceil(float64(n) * eliteFraction))
}

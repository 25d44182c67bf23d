// Package genart approximates a target raster image with a population of
// candidate images, each built from a fixed number of semi-transparent
// colored triangles, evolved by a genetic algorithm.
//
// The fitness of a candidate is the sum of squared per-channel differences
// between its rasterization and the target image; lower is better. Each
// generation sorts the population by fitness, preserves the best quarter
// verbatim, and overwrites the remaining slots with crossover offspring or
// mutants, re-scoring every modified slot before it is compared again.
//
// The package has no termination condition: the host calls [Engine.Tick]
// for as long as it wants and reads the current best individual through
// [Engine.Best] or [Engine.RenderBest] for display.
//
// Rasterization goes through github.com/gogpu/gg's software renderer. A
// [RenderTarget] owns one drawing surface; it is not safe for concurrent
// use, so parallel hosts need one RenderTarget per worker.
package genart

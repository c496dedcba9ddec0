package scene

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-viewfactors/pkg/core"
)

// ViewFactorsForSurface estimates, for every surface, the fraction of energy diffusely
// emitted by surfaceID that is eventually absorbed there, directly or after reflections.
// The result is index-aligned with surface ids. Panics if surfaceID is out of range.
func (s *Scene) ViewFactorsForSurface(sampler core.Sampler, surfaceID, sampleCount int) []float64 {
	viewFactors, _ := s.EstimateViewFactors(sampler, surfaceID, sampleCount)
	return viewFactors
}

// EstimateViewFactors is ViewFactorsForSurface that also reports path statistics
func (s *Scene) EstimateViewFactors(sampler core.Sampler, surfaceID, sampleCount int) ([]float64, EstimateStats) {
	s.checkSurfaceID(surfaceID)

	viewFactors := make([]float64, len(s.surfaces))
	var stats EstimateStats
	if sampleCount <= 0 {
		return viewFactors, stats
	}

	source := s.surfaces[surfaceID]
	for i := 0; i < sampleCount; i++ {
		record := s.TraceRay(emissionRay(source, sampler), sampler)

		// A path contributes to every surface it was absorbed by
		for _, entry := range record.Entries {
			viewFactors[entry.SurfaceID] += entry.EnergyAbsorbed
		}
		stats.AddRecord(record)
	}

	for i := range viewFactors {
		viewFactors[i] /= float64(sampleCount)
	}

	return viewFactors, stats
}

// ViewFactorsForSurfaceParallel is ViewFactorsForSurface split across a worker pool.
// Each worker runs the sequential estimator on sampleCount/workers rays with its own
// generator, and the per-worker means are averaged. Rays that do not divide evenly
// across workers are not traced.
func (s *Scene) ViewFactorsForSurfaceParallel(surfaceID, sampleCount int) []float64 {
	viewFactors, _ := s.EstimateViewFactorsParallel(surfaceID, sampleCount)
	return viewFactors
}

// EstimateViewFactorsParallel is ViewFactorsForSurfaceParallel that also reports path statistics
func (s *Scene) EstimateViewFactorsParallel(surfaceID, sampleCount int) ([]float64, EstimateStats) {
	s.checkSurfaceID(surfaceID)

	if sampleCount <= 0 {
		return make([]float64, len(s.surfaces)), EstimateStats{}
	}

	numWorkers := s.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	// Never hand a worker zero rays
	numWorkers = min(numWorkers, sampleCount)

	raysPerWorker := sampleCount / numWorkers
	dropped := sampleCount - raysPerWorker*numWorkers

	logger := s.log()
	logger.Debug("starting parallel view factor estimate",
		zap.Int("surface", surfaceID),
		zap.Int("samples", sampleCount),
		zap.Int("workers", numWorkers),
		zap.Int("rays_per_worker", raysPerWorker))
	if dropped > 0 {
		logger.Warn("sample count not divisible by worker count, remainder rays skipped",
			zap.Int("requested", sampleCount),
			zap.Int("traced", raysPerWorker*numWorkers),
			zap.Int("dropped", dropped))
	}

	start := time.Now()

	pool := NewWorkerPool(s, numWorkers)
	pool.Start()
	for taskID := 0; taskID < numWorkers; taskID++ {
		pool.SubmitTask(EstimateTask{
			TaskID:    taskID,
			SurfaceID: surfaceID,
			Samples:   raysPerWorker,
			Seed:      taskSeed(s.config.Seed, taskID),
		})
	}
	pool.Stop()

	// Collect by task id so the reduction order does not depend on scheduling
	results := make([]EstimateResult, numWorkers)
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results[result.TaskID] = result
	}

	viewFactors := make([]float64, len(s.surfaces))
	var stats EstimateStats
	for _, result := range results {
		addViewFactors(viewFactors, result.ViewFactors)
		stats = stats.Merge(result.Stats)
	}
	for i := range viewFactors {
		viewFactors[i] /= float64(numWorkers)
	}
	stats.Dropped = dropped

	logger.Debug("parallel view factor estimate complete",
		zap.Int("surface", surfaceID),
		zap.Int("rays", stats.Rays),
		zap.Float64("avg_bounces", stats.AverageBounces()),
		zap.Int("escapes", stats.Escapes),
		zap.Duration("elapsed", time.Since(start)))

	return viewFactors, stats
}

// addViewFactors is the elementwise sum used to combine worker results.
// It is commutative and associative with the zero vector as identity.
func addViewFactors(dst, src []float64) {
	for i, v := range src {
		dst[i] += v
	}
}

// taskSeed derives a well-separated seed for each parallel task
func taskSeed(base int64, taskID int) int64 {
	return base ^ int64(uint64(taskID+1)*0x9e3779b97f4a7c15)
}

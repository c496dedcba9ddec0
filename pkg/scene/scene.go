package scene

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/df07/go-viewfactors/pkg/core"
	"github.com/df07/go-viewfactors/pkg/geometry"
)

// EstimatorConfig contains parallel estimation configuration
type EstimatorConfig struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; each parallel task derives its own generator from it
}

// DefaultEstimatorConfig returns sensible default values
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		NumWorkers: 0,  // Auto-detect CPU count
		Seed:       42, // Deterministic by default
	}
}

// Scene owns an append-only arena of surfaces.
// A surface's index in the arena is its permanent surface id.
// Once construction is finished a Scene may be read from many goroutines.
type Scene struct {
	surfaces []geometry.Surface
	config   EstimatorConfig
	logger   *zap.Logger
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		config: DefaultEstimatorConfig(),
		logger: zap.NewNop(),
	}
}

// Primitive is a composite shape that decomposes into one or more surfaces
type Primitive interface {
	AddSurfaces(s *Scene)
}

// SetEstimatorConfig updates the parallel estimation configuration
func (s *Scene) SetEstimatorConfig(config EstimatorConfig) {
	s.config = config
}

// EstimatorConfig returns the parallel estimation configuration
func (s *Scene) EstimatorConfig() EstimatorConfig {
	return s.config
}

// SetLogger sets the logger used by the estimators. A nil logger disables logging.
func (s *Scene) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
}

func (s *Scene) log() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

// AddSurface appends a surface and returns its surface id
func (s *Scene) AddSurface(surface geometry.Surface) int {
	s.surfaces = append(s.surfaces, surface)
	return len(s.surfaces) - 1
}

// AddPrimitive appends every surface of a composite primitive
func (s *Scene) AddPrimitive(p Primitive) {
	p.AddSurfaces(s)
}

// Len returns the number of surfaces in the scene
func (s *Scene) Len() int {
	return len(s.surfaces)
}

// Surface returns the surface with the given id
func (s *Scene) Surface(surfaceID int) geometry.Surface {
	s.checkSurfaceID(surfaceID)
	return s.surfaces[surfaceID]
}

// Surfaces returns a copy of the surface list, index-aligned with surface ids
func (s *Scene) Surfaces() []geometry.Surface {
	return slices.Clone(s.surfaces)
}

// checkSurfaceID panics if the id does not name a surface in the scene
func (s *Scene) checkSurfaceID(surfaceID int) {
	if surfaceID < 0 || surfaceID >= len(s.surfaces) {
		panic(fmt.Sprintf("scene: surface id %d out of range [0, %d)", surfaceID, len(s.surfaces)))
	}
}

// HitRecord pairs a world-space hit with the id of the surface that was hit
type HitRecord struct {
	SurfaceID int
	Hit       core.Hit
}

// CastRay finds the nearest surface hit by a world-space ray.
// Every surface is tested; there is no acceleration structure.
func (s *Scene) CastRay(ray core.Ray) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false

	for surfaceID, surface := range s.surfaces {
		hit, ok := surface.Intersect(ray)
		if !ok {
			continue
		}
		if !hitAnything || hit.T < closest.Hit.T {
			closest = HitRecord{SurfaceID: surfaceID, Hit: hit}
			hitAnything = true
		}
	}

	return closest, hitAnything
}

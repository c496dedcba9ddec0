package cases

import (
	"errors"
	"math"

	"github.com/df07/go-viewfactors/pkg/analytic"
	"github.com/df07/go-viewfactors/pkg/core"
	"github.com/df07/go-viewfactors/pkg/geometry"
	"github.com/df07/go-viewfactors/pkg/primitives"
	"github.com/df07/go-viewfactors/pkg/scene"
)

// Length used for surfaces that stand in for infinitely long ones
const infiniteLength = 10_000.0

func init() {
	register(Case{
		Name:        "sphere-in-cylinder",
		Description: "Small sphere at the center of an open cylinder; h = half-height / radius",
		Defaults:    Params{"h": 1},
		build:       sphereInCylinder,
	})
	register(Case{
		Name:        "disk-to-sphere",
		Description: "Disk facing a sphere on its axis; h = distance / disk radius, r = sphere radius / disk radius",
		Defaults:    Params{"h": 1, "r": 1},
		build:       diskToSphere,
	})
	register(Case{
		Name:        "small-cylinder-to-sphere",
		Description: "Tiny cylinder pointing at a sphere; h = distance / sphere radius",
		Defaults:    Params{"h": 5},
		build:       smallCylinderToSphere,
	})
	register(Case{
		Name:        "small-sphere-to-sphere",
		Description: "Tiny sphere next to a unit sphere; h = distance / sphere radius",
		Defaults:    Params{"h": 2},
		build:       smallSphereToSphere,
	})
	register(Case{
		Name:        "cylinder-to-cylinder",
		Description: "Two long parallel cylinders; h = center distance / radius",
		Defaults:    Params{"h": 2},
		build:       cylinderToCylinder,
	})
	register(Case{
		Name:        "strip-to-cylinder",
		Description: "Long strip facing a long parallel cylinder; h = distance / radius, v = strip width / diameter",
		Defaults:    Params{"h": 1, "v": 1},
		build:       stripToCylinder,
	})
	register(Case{
		Name:        "rod-to-coaxial-disk",
		Description: "Thin rod standing on the center of a disk; h = rod length / disk radius",
		Defaults:    Params{"h": 1},
		build:       rodToCoaxialDisk,
	})
	register(Case{
		Name:        "equal-rectangular-plates",
		Description: "Two directly opposed equal rectangles; x, y = sides / gap",
		Defaults:    Params{"x": 1, "y": 2},
		build:       equalRectangularPlates,
	})
	register(Case{
		Name:        "unequal-disks",
		Description: "Two parallel coaxial disks; r1, r2 = radii / gap",
		Defaults:    Params{"r1": 1, "r2": 2},
		build:       unequalDisks,
	})
	register(Case{
		Name:        "sphere-to-coaxial-cone",
		Description: "Unit sphere facing a cone apex; r = cone radius, s = gap to apex, w_deg = half angle",
		Defaults:    Params{"r": 1, "s": 1, "w_deg": 40},
		build:       sphereToCoaxialCone,
	})
	register(Case{
		Name:        "coaxial-cone-to-sphere",
		Description: "Cone emitting toward a unit sphere at its apex; r = cone radius, s = gap to apex, w_deg = half angle",
		Defaults:    Params{"r": 2, "s": 1, "w_deg": 40},
		build:       coaxialConeToSphere,
	})
	register(Case{
		Name:        "infinite-plates",
		Description: "Two large parallel gray plates; e1, e2 = emissivities",
		Defaults:    Params{"e1": 0.2, "e2": 0.7},
		build:       infinitePlates,
	})
	register(Case{
		Name:        "cube-enclosure",
		Description: "Closed unit cube of gray walls; e = wall emissivity, expects all energy absorbed",
		Defaults:    Params{"e": 0.5},
		build:       cubeEnclosure,
	})
	register(Case{
		Name:        "specular-disks",
		Description: "Small and large specular gray disks facing each other; e = emissivity",
		Defaults:    Params{"e": 0.2},
		build:       specularDisks,
	})
}

func sphereInCylinder(p Params) (Setup, error) {
	h := p["h"]
	if err := check(h > 0, "h must be positive, got %g", h); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewSphere(core.Zero, 0.1))
	target := s.AddSurface(geometry.NewCylinder(core.Zero, 1.0, 2*h, core.UnitZ))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.SphereInCylinder(h), HasAnalytic: true}, nil
}

func diskToSphere(p Params) (Setup, error) {
	h, r := p["h"], p["r"]
	if err := errors.Join(
		check(h >= 1, "h must be at least 1, got %g", h),
		check(r > 0 && r <= h, "r must be in (0, h], got %g", r),
	); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewDisk(core.UnitX.Multiply(h), 1.0, core.UnitX.Negate()))
	target := s.AddSurface(geometry.NewSphere(core.Zero, r))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.DiskToSphere(h, r), HasAnalytic: true}, nil
}

func smallCylinderToSphere(p Params) (Setup, error) {
	h := p["h"]
	if err := check(h > 1, "h must exceed 1, got %g", h); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewCylinder(core.UnitX.Multiply(h), 1e-5, 2e-5, core.UnitX))
	target := s.AddSurface(geometry.NewSphere(core.Zero, 1.0))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.SmallCylinderToSphere(h), HasAnalytic: true}, nil
}

func smallSphereToSphere(p Params) (Setup, error) {
	h := p["h"]
	if err := check(h > 1, "h must exceed 1, got %g", h); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewSphere(core.UnitX.Multiply(h), 1e-5))
	target := s.AddSurface(geometry.NewSphere(core.Zero, 1.0))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.SmallSphereToSphere(h), HasAnalytic: true}, nil
}

func cylinderToCylinder(p Params) (Setup, error) {
	h := p["h"]
	if err := check(h >= 2, "h must be at least 2, got %g", h); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewCylinder(core.Zero, 1.0, infiniteLength, core.UnitY))
	target := s.AddSurface(geometry.NewCylinder(core.UnitX.Multiply(h), 1.0, infiniteLength, core.UnitY))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.CylinderToCylinder(h), HasAnalytic: true}, nil
}

func stripToCylinder(p Params) (Setup, error) {
	h, v := p["h"], p["v"]
	if err := errors.Join(
		check(h >= 1, "h must be at least 1, got %g", h),
		check(v > 0, "v must be positive, got %g", v),
	); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewRectangle(core.UnitX.Multiply(h), 2*v, infiniteLength,
		core.UnitX.Negate(), core.UnitZ))
	target := s.AddSurface(geometry.NewCylinder(core.Zero, 1.0, infiniteLength, core.UnitY))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.StripToCylinder(h, v), HasAnalytic: true}, nil
}

func rodToCoaxialDisk(p Params) (Setup, error) {
	h := p["h"]
	if err := check(h > 0, "h must be positive, got %g", h); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewCylinder(core.UnitZ.Multiply(0.5*h), 1e-4, h, core.UnitZ))
	target := s.AddSurface(geometry.NewDisk(core.Zero, 1.0, core.UnitZ))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.RodToCoaxialDisk(h), HasAnalytic: true}, nil
}

func equalRectangularPlates(p Params) (Setup, error) {
	x, y := p["x"], p["y"]
	if err := check(x > 0 && y > 0, "x and y must be positive, got %g, %g", x, y); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewRectangle(core.UnitX, x, y, core.UnitX.Negate(), core.UnitZ))
	target := s.AddSurface(geometry.NewRectangle(core.Zero, x, y, core.UnitX, core.UnitZ))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.EqualRectangularPlates(x, y), HasAnalytic: true}, nil
}

func unequalDisks(p Params) (Setup, error) {
	r1, r2 := p["r1"], p["r2"]
	if err := check(r1 > 0 && r2 > 0, "r1 and r2 must be positive, got %g, %g", r1, r2); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewDisk(core.UnitX, r1, core.UnitX.Negate()))
	target := s.AddSurface(geometry.NewDisk(core.Zero, r2, core.UnitX))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.UnequalDisks(r1, r2), HasAnalytic: true}, nil
}

// coneParams validates the sphere/cone parameters and returns the half angle in radians
func coneParams(p Params) (r, s, w float64, err error) {
	r, s = p["r"], p["s"]
	w = p["w_deg"] * math.Pi / 180
	err = errors.Join(
		check(r > 0, "r must be positive, got %g", r),
		check(s >= 0, "s must not be negative, got %g", s),
		check(w < math.Pi/2, "w_deg must be below 90, got %g", p["w_deg"]),
		check(w >= analytic.ConeMinHalfAngle(s), "w_deg must be at least %.2f for s=%g, got %g",
			analytic.ConeMinHalfAngle(s)*180/math.Pi, s, p["w_deg"]),
	)
	return r, s, w, err
}

// addSphereAndCone places the unit sphere at +X and the cone with its apex a gap s from it
func addSphereAndCone(sc *scene.Scene, r, s, w float64) (sphere, cone int) {
	h := analytic.ConeHeight(r, w)
	sphere = sc.AddSurface(geometry.NewSphere(core.UnitX, 1.0))
	cone = sc.AddSurface(geometry.NewCone(core.UnitX.Multiply(-(h + s)), r, h, core.UnitX))
	return sphere, cone
}

func sphereToCoaxialCone(p Params) (Setup, error) {
	r, s, w, err := coneParams(p)
	if err != nil {
		return Setup{}, err
	}

	sc := scene.NewScene()
	sphere, cone := addSphereAndCone(sc, r, s, w)

	return Setup{Scene: sc, Source: sphere, Target: cone,
		Analytic: analytic.SphereToCoaxialCone(r, s, w), HasAnalytic: true}, nil
}

func coaxialConeToSphere(p Params) (Setup, error) {
	r, s, w, err := coneParams(p)
	if err != nil {
		return Setup{}, err
	}

	sc := scene.NewScene()
	sphere, cone := addSphereAndCone(sc, r, s, w)

	return Setup{Scene: sc, Source: cone, Target: sphere,
		Analytic: analytic.CoaxialConeToSphere(r, s, w), HasAnalytic: true}, nil
}

func infinitePlates(p Params) (Setup, error) {
	e1, e2 := p["e1"], p["e2"]
	if err := errors.Join(
		check(e1 > 0 && e1 <= 1, "e1 must be in (0, 1], got %g", e1),
		check(e2 > 0 && e2 <= 1, "e2 must be in (0, 1], got %g", e2),
	); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewRectangle(core.Zero, infiniteLength, infiniteLength,
		core.UnitZ, core.UnitX).WithEmissivity(e1))
	target := s.AddSurface(geometry.NewRectangle(core.UnitZ, infiniteLength, infiniteLength,
		core.UnitZ.Negate(), core.UnitX.Negate()).WithEmissivity(e2))

	return Setup{Scene: s, Source: source, Target: target,
		Analytic: analytic.InfiniteGrayPlates(e1, e2), HasAnalytic: true}, nil
}

func cubeEnclosure(p Params) (Setup, error) {
	e := p["e"]
	if err := check(e > 0 && e <= 1, "e must be in (0, 1], got %g", e); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	box := primitives.NewBox(core.Zero, core.One)
	box.Inward = true
	for _, wall := range box.Faces() {
		s.AddSurface(wall.WithEmissivity(e))
	}

	// Source is the +Y wall
	return Setup{Scene: s, Source: 2, Target: TargetTotal, Analytic: 1, HasAnalytic: true}, nil
}

func specularDisks(p Params) (Setup, error) {
	e := p["e"]
	if err := check(e >= 0 && e <= 1, "e must be in [0, 1], got %g", e); err != nil {
		return Setup{}, err
	}

	s := scene.NewScene()
	source := s.AddSurface(geometry.NewDisk(core.UnitX.Multiply(0.5), 1.0, core.UnitX.Negate()).
		WithEmissivity(e).Specular())
	target := s.AddSurface(geometry.NewDisk(core.UnitX.Multiply(-0.5), 3.0, core.UnitX).
		WithEmissivity(e).Specular())

	return Setup{Scene: s, Source: source, Target: target}, nil
}

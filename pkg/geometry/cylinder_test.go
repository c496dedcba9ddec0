package geometry

import (
	"testing"

	"github.com/df07/go-viewfactors/pkg/core"
)

func TestIntersectCylinder(t *testing.T) {
	runColliderCases(t, ColliderCylinder, []colliderCase{
		{
			name:        "from outside",
			ray:         core.NewRay(core.NewVec3(-3, 0, 0), core.UnitX),
			shouldHit:   true,
			expectedT:   2,
			expectedPos: core.NewVec3(-1, 0, 0),
			expectedN:   core.NewVec3(-1, 0, 0),
		},
		{
			name:        "from the axis keeps the outward normal",
			ray:         core.NewRay(core.Zero, core.UnitX),
			shouldHit:   true,
			expectedT:   1,
			expectedPos: core.UnitX,
			expectedN:   core.UnitX,
		},
		{
			name:        "near root above the top falls through to the far root",
			ray:         core.NewRay(core.NewVec3(-3, 0, 2), core.NewVec3(1, 0, -0.5)),
			shouldHit:   true,
			expectedT:   4,
			expectedPos: core.NewVec3(1, 0, 0),
			expectedN:   core.UnitX,
		},
		{
			name:      "above the height",
			ray:       core.NewRay(core.NewVec3(-3, 0, 0.6), core.UnitX),
			shouldHit: false,
		},
		{
			name:      "along the axis",
			ray:       core.NewRay(core.NewVec3(0, 0, -3), core.UnitZ),
			shouldHit: false,
		},
		{
			name:      "passes beside",
			ray:       core.NewRay(core.NewVec3(-3, 1.5, 0), core.UnitX),
			shouldHit: false,
		},
	})
}

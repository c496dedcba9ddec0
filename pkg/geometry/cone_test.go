package geometry

import (
	"testing"

	"github.com/df07/go-viewfactors/pkg/core"
)

func TestIntersectCone(t *testing.T) {
	const invSqrt2 = 0.7071067811865475

	runColliderCases(t, ColliderCone, []colliderCase{
		{
			name:        "from the side at half height",
			ray:         core.NewRay(core.NewVec3(-3, 0, 0.5), core.UnitX),
			shouldHit:   true,
			expectedT:   2.5,
			expectedPos: core.NewVec3(-0.5, 0, 0.5),
			expectedN:   core.NewVec3(-invSqrt2, 0, invSqrt2),
		},
		{
			name:        "from below through the open base",
			ray:         core.NewRay(core.NewVec3(0.2, 0, -1), core.UnitZ),
			shouldHit:   true,
			expectedT:   1.8,
			expectedPos: core.NewVec3(0.2, 0, 0.8),
			expectedN:   core.NewVec3(invSqrt2, 0, invSqrt2),
		},
		{
			name:      "mirrored nappe above the apex",
			ray:       core.NewRay(core.NewVec3(-3, 0, 1.5), core.UnitX),
			shouldHit: false,
		},
		{
			name:      "below the base",
			ray:       core.NewRay(core.NewVec3(-3, 0, -0.5), core.UnitX),
			shouldHit: false,
		},
		{
			name:      "parallel to a generator",
			ray:       core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 1)),
			shouldHit: false,
		},
	})
}

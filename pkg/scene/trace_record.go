package scene

import "github.com/df07/go-viewfactors/pkg/core"

// TraceRecordEntry records one bounce of a traced path
type TraceRecordEntry struct {
	SurfaceID      int       // Surface hit at this bounce
	EnergyAbsorbed float64   // Energy absorbed by that surface, >= 0
	Point          core.Vec3 // World-space hit point
}

// TraceRecord is the ordered bounce log of one traced path
type TraceRecord struct {
	Origin          core.Ray // Ray the path started with
	LastRay         core.Ray // Most recent ray segment (the outgoing ray of the last bounce)
	Entries         []TraceRecordEntry
	TerminatedEarly bool // True when the bounce cap or energy floor stopped the path
}

// NewTraceRecord starts a record for a path beginning with ray
func NewTraceRecord(ray core.Ray) TraceRecord {
	return TraceRecord{
		Origin:  ray,
		LastRay: ray,
	}
}

// AddEntry appends a bounce; next is the ray leaving the hit point
func (r *TraceRecord) AddEntry(next core.Ray, hit HitRecord, energyAbsorbed float64) {
	r.LastRay = next
	r.Entries = append(r.Entries, TraceRecordEntry{
		SurfaceID:      hit.SurfaceID,
		EnergyAbsorbed: energyAbsorbed,
		Point:          hit.Hit.Position,
	})
}

// TerminateEarly marks the path as artificially capped
func (r *TraceRecord) TerminateEarly() {
	r.TerminatedEarly = true
}

// Escaped reports whether the path ended by missing every surface
func (r TraceRecord) Escaped() bool {
	return !r.TerminatedEarly
}

// TotalAbsorbed returns the energy absorbed over all bounces
func (r TraceRecord) TotalAbsorbed() float64 {
	total := 0.0
	for _, entry := range r.Entries {
		total += entry.EnergyAbsorbed
	}
	return total
}

// RemainingEnergy returns the energy still carried after the last bounce
func (r TraceRecord) RemainingEnergy() float64 {
	return 1.0 - r.TotalAbsorbed()
}

// SegmentKind classifies a drawable piece of a traced path
type SegmentKind int

const (
	SegmentMiss   SegmentKind = iota // Emitted ray that hit nothing
	SegmentFirst                     // Emission point to first hit
	SegmentBounce                    // Hit to hit
	SegmentEscape                    // Last hit out to infinity (truncated)
)

// Segment is a straight piece of a traced path with the energy it carried
type Segment struct {
	Kind   SegmentKind
	From   core.Vec3
	To     core.Vec3
	Energy float64 // Energy carried along the segment, in [0, 1]
}

// Segments returns the polyline of the path for visualization.
// Unbounded segments (misses and escapes) are cut at escapeLength along their ray.
func (r TraceRecord) Segments(escapeLength float64) []Segment {
	if len(r.Entries) == 0 {
		return []Segment{{
			Kind:   SegmentMiss,
			From:   r.Origin.Origin,
			To:     r.Origin.At(escapeLength),
			Energy: 1.0,
		}}
	}

	segments := make([]Segment, 0, len(r.Entries)+1)
	energy := 1.0

	segments = append(segments, Segment{
		Kind:   SegmentFirst,
		From:   r.Origin.Origin,
		To:     r.Entries[0].Point,
		Energy: energy,
	})
	energy -= r.Entries[0].EnergyAbsorbed

	for i := 1; i < len(r.Entries); i++ {
		segments = append(segments, Segment{
			Kind:   SegmentBounce,
			From:   r.Entries[i-1].Point,
			To:     r.Entries[i].Point,
			Energy: energy,
		})
		energy -= r.Entries[i].EnergyAbsorbed
	}

	if !r.TerminatedEarly {
		segments = append(segments, Segment{
			Kind:   SegmentEscape,
			From:   r.LastRay.Origin,
			To:     r.LastRay.At(escapeLength),
			Energy: energy,
		})
	}

	return segments
}

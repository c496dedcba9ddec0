package scene

// EstimateStats contains statistics about one view factor estimation
type EstimateStats struct {
	Rays              int // Emission rays traced
	Bounces           int // Surface hits over all paths
	EarlyTerminations int // Paths stopped by the bounce cap or energy floor
	Escapes           int // Paths that ended by missing every surface
	Dropped           int // Requested rays not traced because they did not divide evenly across workers
}

// AddRecord accumulates the outcome of one traced path
func (s *EstimateStats) AddRecord(record TraceRecord) {
	s.Rays++
	s.Bounces += len(record.Entries)
	if record.TerminatedEarly {
		s.EarlyTerminations++
	} else {
		s.Escapes++
	}
}

// Merge returns the field-wise sum of two stats
func (s EstimateStats) Merge(other EstimateStats) EstimateStats {
	return EstimateStats{
		Rays:              s.Rays + other.Rays,
		Bounces:           s.Bounces + other.Bounces,
		EarlyTerminations: s.EarlyTerminations + other.EarlyTerminations,
		Escapes:           s.Escapes + other.Escapes,
		Dropped:           s.Dropped + other.Dropped,
	}
}

// AverageBounces returns the mean number of bounces per traced ray
func (s EstimateStats) AverageBounces() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Bounces) / float64(s.Rays)
}

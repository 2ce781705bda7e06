package kernel

import "math"

// OrbitStats holds running extrema observed along an orbit.
//
// Minima start at +Inf and maxima at -Inf, so the first sample always updates
// them. A record whose orbit never advanced keeps these identity values; use
// HasData before reading them.
type OrbitStats struct {
	MinReal float64
	MaxReal float64
	MinImag float64
	MaxImag float64

	// MinDistOrigin is the smallest |z| seen.
	MinDistOrigin float64

	// MinDistRealAxis is the smallest |Im z| seen.
	MinDistRealAxis float64

	// MinDistImagAxis is the smallest |Re z| seen.
	MinDistImagAxis float64
}

// NewOrbitStats returns statistics initialized to their reduction identities.
func NewOrbitStats() OrbitStats {
	inf := math.Inf(1)
	return OrbitStats{
		MinReal:         inf,
		MaxReal:         -inf,
		MinImag:         inf,
		MaxImag:         -inf,
		MinDistOrigin:   inf,
		MinDistRealAxis: inf,
		MinDistImagAxis: inf,
	}
}

// Update folds one iterate into the statistics.
// NaN components never compare less or greater, so they are skipped.
func (s *OrbitStats) Update(re, im float64) {
	if re < s.MinReal {
		s.MinReal = re
	}
	if re > s.MaxReal {
		s.MaxReal = re
	}
	if im < s.MinImag {
		s.MinImag = im
	}
	if im > s.MaxImag {
		s.MaxImag = im
	}
	if d := math.Hypot(re, im); d < s.MinDistOrigin {
		s.MinDistOrigin = d
	}
	if d := math.Abs(im); d < s.MinDistRealAxis {
		s.MinDistRealAxis = d
	}
	if d := math.Abs(re); d < s.MinDistImagAxis {
		s.MinDistImagAxis = d
	}
}

// HasData reports whether at least one iterate was recorded.
func (s OrbitStats) HasData() bool {
	return s.MinReal <= s.MaxReal
}

// EscapeRecord is the result of one kernel invocation.
//
// Records are created per pixel and never mutated afterwards.
type EscapeRecord struct {
	// Iterations is the number of completed updates. It equals the budget
	// when the point never escaped.
	Iterations uint32

	// Escaped is true when iteration stopped on the bailout test, or on
	// convergence for root-finding kernels.
	Escaped bool

	// final is the last iterate, meaningful only when Escaped is true.
	final complex128

	// Orbit holds the orbit statistics gathered during iteration.
	Orbit OrbitStats
}

// Inside returns the record of a point that exhausted its budget.
func Inside(maxIter uint32, orbit OrbitStats) EscapeRecord {
	return EscapeRecord{Iterations: maxIter, Orbit: orbit}
}

// Escape returns the record of a point that escaped after iterations steps.
func Escape(iterations uint32, final complex128, orbit OrbitStats) EscapeRecord {
	return EscapeRecord{
		Iterations: iterations,
		Escaped:    true,
		final:      final,
		Orbit:      orbit,
	}
}

// Final returns the last iterate. ok is false for points inside the set,
// which callers must render as background.
func (r EscapeRecord) Final() (z complex128, ok bool) {
	if !r.Escaped {
		return 0, false
	}
	return r.final, true
}

package kernel

import "math"

// orbitTrap runs the quadratic Mandelbrot iteration and reports, for escaping
// points, an iteration value derived from how close the orbit came to the trap
// point. The starting z = 0 is not sampled.
func (k *Kernel) orbitTrap(cr, ci float64, maxIter uint32) EscapeRecord {
	tx, ty, size := k.p.trapX, k.p.trapY, k.p.trapSize
	minDist := math.Inf(1)
	var zr, zi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(trapValue(minDist, size, maxIter), complex(zr, zi), orbit)
		}
		if i > 0 {
			if d := math.Hypot(zr-tx, zi-ty); d < minDist {
				minDist = d
			}
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// trapValue maps a trap distance to [0, maxIter]: a distance of zero gives
// maxIter and anything at or beyond size gives zero.
func trapValue(dist, size float64, maxIter uint32) uint32 {
	proximity := 1 - math.Min(dist/size, 1)
	if proximity < 0 || math.IsNaN(proximity) {
		proximity = 0
	}
	return uint32(proximity * float64(maxIter))
}

// pickoverStalk iterates z ← z² + c with z0 = c = pixel, tracking how close
// the orbit passes to either axis. Escaping points blend that proximity with
// the escape time.
func (k *Kernel) pickoverStalk(cr, ci float64, maxIter uint32) EscapeRecord {
	width := k.p.stalkWidth
	minAxis := math.Inf(1)
	zr, zi := cr, ci
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(stalkValue(minAxis, width, i, maxIter), complex(zr, zi), orbit)
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		orbit.Update(zr, zi)
		if d := math.Min(math.Abs(zr), math.Abs(zi)); d < minAxis {
			minAxis = d
		}
	}
	return Inside(maxIter, orbit)
}

// stalkValue averages the stalk proximity, scaled to the budget, with the
// escape iteration.
func stalkValue(minAxis, width float64, i, maxIter uint32) uint32 {
	proximity := 1 - math.Min(minAxis/width, 1)
	if proximity < 0 || math.IsNaN(proximity) {
		proximity = 0
	}
	return uint32(0.5*proximity*float64(maxIter) + 0.5*float64(i))
}

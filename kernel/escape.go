package kernel

import "math"

// mandelbrot iterates z ← z^p + c from z = 0 with c at the pixel.
// Multibrot shares this loop with a different default power.
func (k *Kernel) mandelbrot(cr, ci float64, maxIter uint32) EscapeRecord {
	p := k.p.power
	var zr, zi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(i, complex(zr, zi), orbit)
		}
		zr, zi = powz(zr, zi, p)
		zr += cr
		zi += ci
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// julia iterates z ← z^p + c from z at the pixel with c fixed.
func (k *Kernel) julia(zr, zi float64, maxIter uint32) EscapeRecord {
	p := k.p.power
	cr, ci := k.p.cReal, k.p.cImag
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(i, complex(zr, zi), orbit)
		}
		zr, zi = powz(zr, zi, p)
		zr += cr
		zi += ci
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// burningShip folds both components to their absolute values before raising.
func (k *Kernel) burningShip(cr, ci float64, maxIter uint32) EscapeRecord {
	p := k.p.power
	var zr, zi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(i, complex(zr, zi), orbit)
		}
		zr, zi = powz(math.Abs(zr), math.Abs(zi), p)
		zr += cr
		zi += ci
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// tricorn raises the conjugate of z, which negates the polar angle.
func (k *Kernel) tricorn(cr, ci float64, maxIter uint32) EscapeRecord {
	p := k.p.power
	var zr, zi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(i, complex(zr, zi), orbit)
		}
		zr, zi = powz(zr, -zi, p)
		zr += cr
		zi += ci
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// celtic takes the absolute value of the real part after adding c.
func (k *Kernel) celtic(cr, ci float64, maxIter uint32) EscapeRecord {
	p := k.p.power
	var zr, zi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(i, complex(zr, zi), orbit)
		}
		zr, zi = powz(zr, zi, p)
		zr = math.Abs(zr + cr)
		zi += ci
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// phoenix iterates z ← z² + c + p·z_prev with complex p.
func (k *Kernel) phoenix(cr, ci float64, maxIter uint32) EscapeRecord {
	pr, pi := k.p.pReal, k.p.pImag
	var zr, zi, yr, yi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(i, complex(zr, zi), orbit)
		}
		nr := zr*zr - zi*zi + cr + pr*yr - pi*yi
		ni := 2*zr*zi + ci + pr*yi + pi*yr
		yr, yi = zr, zi
		zr, zi = nr, ni
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// spider iterates z ← z² + c, then c ← c/2 + z.
func (k *Kernel) spider(cr, ci float64, maxIter uint32) EscapeRecord {
	var zr, zi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > bailout {
			return Escape(i, complex(zr, zi), orbit)
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		cr, ci = cr/2+zr, ci/2+zi
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

// biomorph bails out at the escape radius, but a point whose real or
// imaginary part is still within the radius counts as inside.
func (k *Kernel) biomorph(cr, ci float64, maxIter uint32) EscapeRecord {
	p := k.p.power
	r := k.p.escapeRadius
	r2 := r * r
	var zr, zi float64
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		if zr*zr+zi*zi > r2 {
			if math.Abs(zr) < r || math.Abs(zi) < r {
				return Inside(maxIter, orbit)
			}
			return Escape(i, complex(zr, zi), orbit)
		}
		zr, zi = powz(zr, zi, p)
		zr += cr
		zi += ci
		orbit.Update(zr, zi)
	}
	if math.Abs(zr) < r || math.Abs(zi) < r {
		return Inside(maxIter, orbit)
	}
	return Escape(maxIter, complex(zr, zi), orbit)
}

package kernel

import "math"

// singular is the |f'(z)|² below which a Newton step is abandoned.
const singular = 1e-20

// cubeRoots are the roots of z³ - 1.
var cubeRoots = [3]complex128{
	complex(1, 0),
	complex(-0.5, 0.8660254037844386),
	complex(-0.5, -0.8660254037844386),
}

// newton runs Newton's method on z³ - 1 from the pixel. Converging after i
// steps reports maxIter - i as escaped, so fast convergence shades brightest.
// A vanishing derivative ends iteration as inside.
func (k *Kernel) newton(zr, zi float64, maxIter uint32) EscapeRecord {
	tol2 := k.p.tolerance * k.p.tolerance
	orbit := NewOrbitStats()
	for i := uint32(0); i < maxIter; i++ {
		for _, root := range cubeRoots {
			dr := zr - real(root)
			di := zi - imag(root)
			if dr*dr+di*di < tol2 {
				return Escape(maxIter-i, complex(zr, zi), orbit)
			}
		}

		// f(z) = z³ - 1, f'(z) = 3z².
		z2r := zr*zr - zi*zi
		z2i := 2 * zr * zi
		fr := z2r*zr - z2i*zi - 1
		fi := z2r*zi + z2i*zr
		dr := 3 * z2r
		di := 3 * z2i

		denom := dr*dr + di*di
		if math.Abs(denom) < singular {
			break
		}
		zr -= (fr*dr + fi*di) / denom
		zi -= (fi*dr - fr*di) / denom
		orbit.Update(zr, zi)
	}
	return Inside(maxIter, orbit)
}

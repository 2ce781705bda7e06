package kernel

import "math"

// bailout is the squared escape radius shared by the quadratic kernels.
const bailout = 4.0

// Kernel is one escape-time iteration rule together with its parameters.
//
// The zero value is a Mandelbrot kernel with power 0; use New instead.
type Kernel struct {
	kind Kind
	p    params
}

// New returns a kernel of the given kind with its canonical parameters.
// An invalid kind yields a Mandelbrot kernel.
func New(kind Kind) Kernel {
	if !kind.Valid() {
		kind = Mandelbrot
	}
	return Kernel{kind: kind, p: defaultParams(kind)}
}

// Kind returns the kernel kind.
func (k *Kernel) Kind() Kind { return k.kind }

// Name returns the display name of the kernel.
func (k *Kernel) Name() string { return k.kind.String() }

// Parameters returns the current parameters in display order.
func (k *Kernel) Parameters() []Parameter {
	defs := paramDefs[k.kind]
	out := make([]Parameter, 0, len(defs))
	for _, d := range defs {
		out = append(out, Parameter{
			Name:  d.name,
			Value: *d.field(&k.p),
			Min:   d.min,
			Max:   d.max,
		})
	}
	return out
}

// Parameter returns the current value of a named parameter.
func (k *Kernel) Parameter(name string) (float64, bool) {
	for _, d := range paramDefs[k.kind] {
		if d.name == name {
			return *d.field(&k.p), true
		}
	}
	return 0, false
}

// SetParameter sets a named parameter, clamping it to the declared range.
// Unknown names and NaN values are ignored.
func (k *Kernel) SetParameter(name string, value float64) {
	if math.IsNaN(value) {
		return
	}
	for _, d := range paramDefs[k.kind] {
		if d.name == name {
			*d.field(&k.p) = d.clamp(value)
			return
		}
	}
}

// Lobes returns the bulb count implied by the power parameter,
// floor(power) - 1. It is only meaningful for power-based kernels.
func (k *Kernel) Lobes() int {
	return int(math.Floor(k.p.power)) - 1
}

// Compute returns the iteration count at (x, y). It always equals
// ComputeFull(x, y, maxIter).Iterations.
func (k *Kernel) Compute(x, y float64, maxIter uint32) uint32 {
	return k.ComputeFull(x, y, maxIter).Iterations
}

// ComputeFull iterates the kernel at (x, y) and returns the full record.
func (k *Kernel) ComputeFull(x, y float64, maxIter uint32) EscapeRecord {
	switch k.kind {
	case Julia:
		return k.julia(x, y, maxIter)
	case BurningShip:
		return k.burningShip(x, y, maxIter)
	case Tricorn:
		return k.tricorn(x, y, maxIter)
	case Celtic:
		return k.celtic(x, y, maxIter)
	case Newton:
		return k.newton(x, y, maxIter)
	case Biomorph:
		return k.biomorph(x, y, maxIter)
	case Phoenix:
		return k.phoenix(x, y, maxIter)
	case Multibrot, Mandelbrot:
		return k.mandelbrot(x, y, maxIter)
	case Spider:
		return k.spider(x, y, maxIter)
	case OrbitTrap:
		return k.orbitTrap(x, y, maxIter)
	case PickoverStalk:
		return k.pickoverStalk(x, y, maxIter)
	default:
		return k.mandelbrot(x, y, maxIter)
	}
}

// powz raises re+im·i to a real power. Power 2 uses the algebraic expansion;
// other powers go through polar form.
func powz(re, im, p float64) (float64, float64) {
	if p == 2 {
		return re*re - im*im, 2 * re * im
	}
	r := math.Pow(re*re+im*im, p/2)
	theta := p * math.Atan2(im, re)
	return r * math.Cos(theta), r * math.Sin(theta)
}

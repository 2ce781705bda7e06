package kernel

import "math"

// Parameter is a named tunable value with its closed range.
type Parameter struct {
	Name  string
	Value float64
	Min   float64
	Max   float64
}

// params stores every tunable of every kind; each kind reads only its own.
type params struct {
	power        float64
	cReal        float64
	cImag        float64
	tolerance    float64
	escapeRadius float64
	pReal        float64
	pImag        float64
	trapX        float64
	trapY        float64
	trapSize     float64
	stalkWidth   float64
}

type paramDef struct {
	name     string
	def      float64
	min, max float64
	field    func(*params) *float64
}

func powerField(p *params) *float64        { return &p.power }
func cRealField(p *params) *float64        { return &p.cReal }
func cImagField(p *params) *float64        { return &p.cImag }
func toleranceField(p *params) *float64    { return &p.tolerance }
func escapeRadiusField(p *params) *float64 { return &p.escapeRadius }
func pRealField(p *params) *float64        { return &p.pReal }
func pImagField(p *params) *float64        { return &p.pImag }
func trapXField(p *params) *float64        { return &p.trapX }
func trapYField(p *params) *float64        { return &p.trapY }
func trapSizeField(p *params) *float64     { return &p.trapSize }
func stalkWidthField(p *params) *float64   { return &p.stalkWidth }

var quadraticPower = paramDef{"power", 2, 1, 8, powerField}

// paramDefs lists the tunables of each kind in display order.
var paramDefs = [kindCount][]paramDef{
	Mandelbrot:  {quadraticPower},
	BurningShip: {quadraticPower},
	Tricorn:     {quadraticPower},
	Celtic:      {quadraticPower},
	Julia: {
		{"c_real", -0.7, -2, 2, cRealField},
		{"c_imag", 0.27015, -2, 2, cImagField},
		quadraticPower,
	},
	Newton: {
		{"tolerance", 0.001, 0.0001, 0.1, toleranceField},
	},
	Biomorph: {
		{"escape_radius", 16, 4, 64, escapeRadiusField},
		quadraticPower,
	},
	Phoenix: {
		{"p_real", 0.5667, -2, 2, pRealField},
		{"p_imag", 0, -2, 2, pImagField},
	},
	Multibrot: {
		{"power", 3, 2, 10, powerField},
	},
	Spider: nil,
	OrbitTrap: {
		{"trap_x", 0, -2, 2, trapXField},
		{"trap_y", 0, -2, 2, trapYField},
		{"trap_size", 0.5, 0.1, 2, trapSizeField},
	},
	PickoverStalk: {
		{"stalk_width", 0.05, 0.001, 1, stalkWidthField},
	},
}

func defaultParams(kind Kind) params {
	var p params
	p.power = 2
	for _, d := range paramDefs[kind] {
		*d.field(&p) = d.def
	}
	return p
}

func (d paramDef) clamp(v float64) float64 {
	return math.Max(d.min, math.Min(d.max, v))
}

// DefaultParameters returns the canonical parameter list of kind.
func DefaultParameters(kind Kind) []Parameter {
	k := New(kind)
	return k.Parameters()
}

package kernel

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownKernel is returned by Parse for identifiers that name no kernel.
var ErrUnknownKernel = errors.New("kernel: unknown kernel")

// Kind identifies one of the built-in iteration rules.
type Kind uint8

// Kernel kinds.
const (
	Mandelbrot Kind = iota
	Julia
	BurningShip
	Tricorn
	Celtic
	Newton
	Biomorph
	Phoenix
	Multibrot
	Spider
	OrbitTrap
	PickoverStalk

	kindCount
)

// Category groups kernels by how they treat the pixel coordinate.
type Category uint8

// Kernel categories.
const (
	// MandelbrotLike kernels use the pixel as the constant c and start at z = 0.
	MandelbrotLike Category = iota
	// JuliaLike kernels use the pixel as z0 and a fixed parameter as c.
	JuliaLike
	// Special kernels follow their own rules.
	Special
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case MandelbrotLike:
		return "Mandelbrot-like"
	case JuliaLike:
		return "Julia-like"
	case Special:
		return "Special"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// Info describes a kernel kind.
type Info struct {
	Kind        Kind
	ID          string
	Name        string
	Description string
	CenterX     float64
	CenterY     float64
	Zoom        float64
	Category    Category
}

var infos = [kindCount]Info{
	Mandelbrot:    {Mandelbrot, "mandelbrot", "Mandelbrot", "The classic Mandelbrot set", -0.5, 0, 1, MandelbrotLike},
	Julia:         {Julia, "julia", "Julia", "Julia sets with variable c parameter", 0, 0, 1, JuliaLike},
	BurningShip:   {BurningShip, "burning_ship", "Burning Ship", "Burning Ship fractal with absolute values", -0.5, -0.5, 1, MandelbrotLike},
	Tricorn:       {Tricorn, "tricorn", "Tricorn", "Tricorn/Mandelbar fractal", 0, 0, 1, MandelbrotLike},
	Celtic:        {Celtic, "celtic", "Celtic", "Celtic fractal variant", 0, 0, 1, MandelbrotLike},
	Newton:        {Newton, "newton", "Newton", "Newton's method fractal for z^3 - 1 = 0", 0, 0, 1, Special},
	Biomorph:      {Biomorph, "biomorph", "Biomorph", "Biomorph fractal with escape conditions", 0, 0, 1, Special},
	Phoenix:       {Phoenix, "phoenix", "Phoenix", "Phoenix fractal with memory term", 0, 0, 1, Special},
	Multibrot:     {Multibrot, "multibrot", "Multibrot", "Generalized Mandelbrot with variable power", 0, 0, 1, MandelbrotLike},
	Spider:        {Spider, "spider", "Spider", "Spider fractal with evolving c parameter", 0, 0, 1, Special},
	OrbitTrap:     {OrbitTrap, "orbit_trap", "Orbit Trap", "Mandelbrot with orbit trap coloring", -0.5, 0, 1, Special},
	PickoverStalk: {PickoverStalk, "pickover_stalk", "Pickover Stalk", "Pickover stalk orbit trap", -0.5, 0, 1, Special},
}

// Valid reports whether k names a built-in kernel.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Info returns the metadata of k. Unknown kinds report Mandelbrot's metadata.
func (k Kind) Info() Info {
	if !k.Valid() {
		return infos[Mandelbrot]
	}
	return infos[k]
}

// String returns the display name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return infos[k].Name
}

// ID returns the stable lowercase identifier of k, e.g. "burning_ship".
func (k Kind) ID() string {
	if !k.Valid() {
		return ""
	}
	return infos[k].ID
}

// Kinds returns every kernel kind sorted by display name.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b Kind) int {
		return strings.Compare(infos[a].Name, infos[b].Name)
	})
	return kinds
}

// Parse resolves an identifier or display name, case-insensitively.
// Spaces, dashes and underscores are interchangeable.
func Parse(s string) (Kind, error) {
	norm := normalizeID(s)
	for k := range kindCount {
		if norm == normalizeID(infos[k].ID) || norm == normalizeID(infos[k].Name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
}

func normalizeID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, s)
}

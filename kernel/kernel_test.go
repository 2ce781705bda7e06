package kernel

import (
	"errors"
	"math"
	"sync"
	"testing"
)

// =============================================================================
// Cross-consistency
// =============================================================================

func TestComputeMatchesComputeFull(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {-0.5, 0}, {0.25, 0}, {2, 0}, {2, 2}, {-2, -2},
		{0.3, 0.5}, {-0.75, 0.1}, {1, 0}, {-0.5, 0.8660254037844386},
		{0.001, -0.001}, {1e-12, 1e-12}, {-1.7, 0.02},
	}
	budgets := []uint32{0, 1, 7, 100}

	for _, kind := range Kinds() {
		k := New(kind)
		for _, p := range points {
			for _, n := range budgets {
				got := k.Compute(p[0], p[1], n)
				full := k.ComputeFull(p[0], p[1], n)
				if got != full.Iterations {
					t.Errorf("%s: Compute(%v, %v, %d) = %d, ComputeFull = %d",
						kind, p[0], p[1], n, got, full.Iterations)
				}
			}
		}
	}
}

func TestZeroBudget(t *testing.T) {
	for _, kind := range Kinds() {
		k := New(kind)
		rec := k.ComputeFull(0.3, 0.2, 0)
		if rec.Iterations != 0 {
			t.Errorf("%s: Iterations = %d, want 0", kind, rec.Iterations)
		}
		if rec.Escaped {
			t.Errorf("%s: Escaped = true with zero budget", kind)
		}
		if rec.Orbit.HasData() {
			t.Errorf("%s: orbit has data with zero budget", kind)
		}
	}
}

func TestInsideHasNoFinalValue(t *testing.T) {
	k := New(Mandelbrot)
	rec := k.ComputeFull(-0.5, 0, 50)
	if rec.Escaped {
		t.Fatal("(-0.5, 0) escaped")
	}
	if _, ok := rec.Final(); ok {
		t.Error("Final() ok = true for inside point")
	}
}

// =============================================================================
// Mandelbrot family
// =============================================================================

func TestMandelbrot(t *testing.T) {
	k := New(Mandelbrot)
	tests := []struct {
		x, y float64
		want uint32
	}{
		{-0.5, 0, 100},
		{0.25, 0, 100},
		{2, 0, 2},
		{0.5, 0.5, 5},
	}
	for _, tt := range tests {
		if got := k.Compute(tt.x, tt.y, 100); got != tt.want {
			t.Errorf("Compute(%v, %v, 100) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	for _, n := range []uint32{1, 2, 10, 1000} {
		if got := k.Compute(-0.5, 0, n); got != n {
			t.Errorf("Compute(-0.5, 0, %d) = %d, want %d", n, got, n)
		}
	}
}

func TestMandelbrotEscapeRecord(t *testing.T) {
	k := New(Mandelbrot)
	rec := k.ComputeFull(2, 0, 100)
	if !rec.Escaped {
		t.Fatal("(2, 0) did not escape")
	}
	z, ok := rec.Final()
	if !ok {
		t.Fatal("Final() ok = false")
	}
	// z1 = 2, z2 = 6.
	if z != complex(6, 0) {
		t.Errorf("Final() = %v, want (6+0i)", z)
	}
	if rec.Orbit.MinReal != 2 || rec.Orbit.MaxReal != 6 {
		t.Errorf("real range = [%v, %v], want [2, 6]", rec.Orbit.MinReal, rec.Orbit.MaxReal)
	}
	if rec.Orbit.MinDistRealAxis != 0 {
		t.Errorf("MinDistRealAxis = %v, want 0", rec.Orbit.MinDistRealAxis)
	}
}

func TestMultibrot(t *testing.T) {
	k := New(Multibrot)
	if v, _ := k.Parameter("power"); v != 3 {
		t.Fatalf("default power = %v, want 3", v)
	}
	if got := k.Lobes(); got != 2 {
		t.Errorf("Lobes() = %d, want 2", got)
	}
	if got := k.Compute(-0.5, 0, 100); got != 6 {
		t.Errorf("Compute(-0.5, 0, 100) = %d, want 6", got)
	}
	if got := k.Compute(0, 0, 100); got != 100 {
		t.Errorf("Compute(0, 0, 100) = %d, want 100", got)
	}

	k.SetParameter("power", 5.7)
	if got := k.Lobes(); got != 4 {
		t.Errorf("Lobes() at power 5.7 = %d, want 4", got)
	}
}

func TestFarPointsEscapeQuickly(t *testing.T) {
	for _, kind := range []Kind{BurningShip, Tricorn, Celtic, Phoenix, Spider} {
		k := New(kind)
		got := k.ComputeFull(2, 2, 100)
		if !got.Escaped || got.Iterations >= 10 {
			t.Errorf("%s: (2, 2) = %d escaped=%v, want escape under 10", kind, got.Iterations, got.Escaped)
		}
	}
}

func TestCenterPointsStayInside(t *testing.T) {
	tests := []struct {
		kind Kind
		x, y float64
	}{
		{BurningShip, -0.5, -0.5},
		{BurningShip, 0, 0},
		{Tricorn, 0, 0},
		{Tricorn, -0.5, 0},
		{Celtic, 0, 0},
		{Celtic, -0.5, 0},
		{Phoenix, 0, 0},
		{Phoenix, -0.5, 0},
		{Spider, 0, 0},
		{Spider, -0.5, 0},
	}
	for _, tt := range tests {
		k := New(tt.kind)
		if got := k.Compute(tt.x, tt.y, 100); got != 100 {
			t.Errorf("%s: Compute(%v, %v, 100) = %d, want 100", tt.kind, tt.x, tt.y, got)
		}
	}
}

func TestSpiderEvolvesC(t *testing.T) {
	k := New(Spider)
	if got := k.Compute(0.1, 0.1, 100); got != 6 {
		t.Errorf("Compute(0.1, 0.1, 100) = %d, want 6", got)
	}
}

func TestBurningShipAbsBeforeSquare(t *testing.T) {
	// The orbits agree at z1 = 0.1-i and diverge once the fold flips Im z1.
	ship := New(BurningShip)
	mand := New(Mandelbrot)
	ship3 := ship.ComputeFull(0.1, -1, 3)
	mand3 := mand.ComputeFull(0.1, -1, 3)
	if ship3.Orbit.MinImag == mand3.Orbit.MinImag && ship3.Orbit.MaxImag == mand3.Orbit.MaxImag {
		t.Error("burning ship orbit matches mandelbrot orbit")
	}
}

func TestJulia(t *testing.T) {
	k := New(Julia)
	if got := k.Compute(0, 0, 100); got != 96 {
		t.Errorf("Compute(0, 0, 100) = %d, want 96", got)
	}
	if got := k.Compute(1, 0, 100); got != 9 {
		t.Errorf("Compute(1, 0, 100) = %d, want 9", got)
	}

	k.SetParameter("c_real", 0)
	k.SetParameter("c_imag", 0)
	// c = 0 makes the unit disc invariant.
	if got := k.Compute(0.5, 0.5, 100); got != 100 {
		t.Errorf("Compute(0.5, 0.5, 100) with c = 0 = %d, want 100", got)
	}
}

// =============================================================================
// Special kernels
// =============================================================================

func TestNewton(t *testing.T) {
	k := New(Newton)

	if got := k.Compute(1, 0, 100); got <= 90 {
		t.Errorf("Compute(1, 0, 100) = %d, want > 90", got)
	}
	if got := k.Compute(1.0005, 0, 100); got <= 90 {
		t.Errorf("Compute(1.0005, 0, 100) = %d, want > 90", got)
	}

	rec := k.ComputeFull(0, 0, 100)
	if rec.Iterations != 100 || rec.Escaped {
		t.Errorf("origin = %d escaped=%v, want 100 inside", rec.Iterations, rec.Escaped)
	}

	rec = k.ComputeFull(-0.4, 0.9, 100)
	if !rec.Escaped {
		t.Fatal("(-0.4, 0.9) did not converge")
	}
	z, _ := rec.Final()
	if d := math.Hypot(real(z)+0.5, imag(z)-0.8660254037844386); d > 0.001 {
		t.Errorf("converged to %v, want near -0.5+0.866i", z)
	}
}

func TestBiomorph(t *testing.T) {
	k := New(Biomorph)

	if got := k.Compute(0, 0, 100); got != 100 {
		t.Errorf("Compute(0, 0, 100) = %d, want 100", got)
	}

	// Bails out at z = 3+21i with a small real part, which counts as inside.
	rec := k.ComputeFull(3, 3, 100)
	if rec.Escaped || rec.Iterations != 100 {
		t.Errorf("(3, 3) = %d escaped=%v, want inside", rec.Iterations, rec.Escaped)
	}

	rec = k.ComputeFull(20, 20, 100)
	if !rec.Escaped || rec.Iterations != 1 {
		t.Errorf("(20, 20) = %d escaped=%v, want escape at 1", rec.Iterations, rec.Escaped)
	}
}

func TestOrbitTrap(t *testing.T) {
	k := New(OrbitTrap)

	if got := k.Compute(-0.5, 0, 100); got != 100 {
		t.Errorf("Compute(-0.5, 0, 100) = %d, want 100", got)
	}

	// Escapes right after the first update, before any trap sample is taken.
	rec := k.ComputeFull(2, 2, 100)
	if !rec.Escaped || rec.Iterations != 0 {
		t.Errorf("(2, 2) = %d escaped=%v, want 0 escaped", rec.Iterations, rec.Escaped)
	}

	// c = 1: z1 = 1 (distance 1), z2 = 2 (distance 2), z3 = 5 escapes.
	// Move the trap to (1, 0) so the minimum distance is zero.
	k.SetParameter("trap_x", 1)
	if got := k.Compute(1, 0, 100); got != 100 {
		t.Errorf("Compute(1, 0, 100) with trap on orbit = %d, want 100", got)
	}
	k.SetParameter("trap_x", 0)
	k.SetParameter("trap_size", 2)
	// Distance 1 with size 2 gives proximity 0.5.
	if got := k.Compute(1, 0, 100); got != 50 {
		t.Errorf("Compute(1, 0, 100) = %d, want 50", got)
	}
}

func TestPickoverStalk(t *testing.T) {
	k := New(PickoverStalk)

	if got := k.Compute(0, 0, 100); got != 100 {
		t.Errorf("Compute(0, 0, 100) = %d, want 100", got)
	}

	// z0 = pixel, so a far pixel escapes before any update.
	rec := k.ComputeFull(2, 2, 100)
	if !rec.Escaped || rec.Iterations != 0 {
		t.Errorf("(2, 2) = %d escaped=%v, want 0 escaped", rec.Iterations, rec.Escaped)
	}

	// c = 1 on the real axis: z1 = 2, z2 = 5 escapes at i = 2 with the
	// orbit on the axis, so proximity is 1: 0.5*100 + 0.5*2 = 51.
	if got := k.Compute(1, 0, 100); got != 51 {
		t.Errorf("Compute(1, 0, 100) = %d, want 51", got)
	}
}

// =============================================================================
// Parameters
// =============================================================================

func TestParametersClamp(t *testing.T) {
	k := New(Julia)
	k.SetParameter("c_real", 5)
	if v, _ := k.Parameter("c_real"); v != 2 {
		t.Errorf("c_real = %v, want 2", v)
	}
	k.SetParameter("c_real", -5)
	if v, _ := k.Parameter("c_real"); v != -2 {
		t.Errorf("c_real = %v, want -2", v)
	}
	k.SetParameter("c_real", math.NaN())
	if v, _ := k.Parameter("c_real"); v != -2 {
		t.Errorf("c_real after NaN = %v, want -2", v)
	}
}

func TestUnknownParameterIgnored(t *testing.T) {
	k := New(Mandelbrot)
	before := k.Parameters()
	k.SetParameter("nope", 3)
	after := k.Parameters()
	if len(before) != len(after) || before[0] != after[0] {
		t.Errorf("parameters changed: %v -> %v", before, after)
	}
	if _, ok := k.Parameter("nope"); ok {
		t.Error("Parameter(nope) ok = true")
	}
}

func TestDefaultParameters(t *testing.T) {
	tests := []struct {
		kind  Kind
		names []string
	}{
		{Mandelbrot, []string{"power"}},
		{Julia, []string{"c_real", "c_imag", "power"}},
		{Newton, []string{"tolerance"}},
		{Biomorph, []string{"escape_radius", "power"}},
		{Phoenix, []string{"p_real", "p_imag"}},
		{Spider, nil},
		{OrbitTrap, []string{"trap_x", "trap_y", "trap_size"}},
		{PickoverStalk, []string{"stalk_width"}},
	}
	for _, tt := range tests {
		params := DefaultParameters(tt.kind)
		if len(params) != len(tt.names) {
			t.Errorf("%s: %d parameters, want %d", tt.kind, len(params), len(tt.names))
			continue
		}
		for i, p := range params {
			if p.Name != tt.names[i] {
				t.Errorf("%s: parameter %d = %q, want %q", tt.kind, i, p.Name, tt.names[i])
			}
			if p.Value < p.Min || p.Value > p.Max {
				t.Errorf("%s: %s = %v outside [%v, %v]", tt.kind, p.Name, p.Value, p.Min, p.Max)
			}
		}
	}
}

func TestSetParameterDoesNotAffectCopies(t *testing.T) {
	a := New(Julia)
	b := a
	b.SetParameter("c_real", 0.3)
	if v, _ := a.Parameter("c_real"); v != -0.7 {
		t.Errorf("original c_real = %v, want -0.7", v)
	}
}

// =============================================================================
// Registry
// =============================================================================

func TestKindsSorted(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 12 {
		t.Fatalf("len(Kinds()) = %d, want 12", len(kinds))
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1].String() > kinds[i].String() {
			t.Errorf("Kinds() not sorted: %s before %s", kinds[i-1], kinds[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"mandelbrot", Mandelbrot},
		{"burning_ship", BurningShip},
		{"Burning Ship", BurningShip},
		{"burning-ship", BurningShip},
		{"PICKOVER_STALK", PickoverStalk},
		{"orbit trap", OrbitTrap},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("buddhabrot"); !errors.Is(err, ErrUnknownKernel) {
		t.Errorf("Parse(buddhabrot) error = %v, want ErrUnknownKernel", err)
	}
}

func TestInfo(t *testing.T) {
	info := BurningShip.Info()
	if info.CenterX != -0.5 || info.CenterY != -0.5 {
		t.Errorf("center = (%v, %v), want (-0.5, -0.5)", info.CenterX, info.CenterY)
	}
	if info.Category != MandelbrotLike {
		t.Errorf("Category = %s, want %s", info.Category, MandelbrotLike)
	}
	if Julia.Info().Category != JuliaLike {
		t.Errorf("Julia category = %s", Julia.Info().Category)
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("String() = %q", got)
	}
}

// =============================================================================
// Concurrency
// =============================================================================

func TestConcurrentCompute(t *testing.T) {
	k := New(Mandelbrot)
	want := k.Compute(0.3, 0.5, 500)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := k.Compute(0.3, 0.5, 500); got != want {
					t.Errorf("Compute = %d, want %d", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkMandelbrot(b *testing.B) {
	k := New(Mandelbrot)
	for b.Loop() {
		k.ComputeFull(-0.5, 0, 1000)
	}
}

func BenchmarkMultibrot(b *testing.B) {
	k := New(Multibrot)
	for b.Loop() {
		k.ComputeFull(0, 0, 1000)
	}
}

func BenchmarkNewton(b *testing.B) {
	k := New(Newton)
	for b.Loop() {
		k.ComputeFull(0.3, 0.7, 1000)
	}
}

package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// passthrough returns coefficients for a unity gain passthrough (B0=1, all else 0).
func passthrough() Coefficients {
	return Coefficients{B0: 1}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != (State{}) {
		t.Fatalf("initial state not zero: %+v", st)
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(passthrough())
	input := []float64{1, 0, -1, 0.5, 0.25}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DirectFormI(t *testing.T) {
	// Hand-traced with B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04 and
	// x = [1, 0, 0, 0]:
	//
	// n=0: y = 0.25
	// n=1: y = 0.5 + 0.2*0.25 = 0.55
	// n=2: y = 0.25 + 0.2*0.55 - 0.04*0.25 = 0.35
	// n=3: y = 0.2*0.35 - 0.04*0.55 = 0.048
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		y := s.ProcessSample(x)
		if !almostEqual(y, w, eps) {
			t.Errorf("n=%d: got %v, want %v", i, y, w)
		}
	}
}

func TestState_HoldsRecentInputsAndOutputs(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	var st State

	y0 := st.Process(&c, 1)
	y1 := st.Process(&c, 0.5)

	want := State{X1: 0.5, X2: 1, Y1: y1, Y2: y0}
	if st != want {
		t.Fatalf("state = %+v, want %+v", st, want)
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.1}
	input := []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.3, 0.1}

	ref := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	s := NewSection(c)
	buf := append([]float64(nil), input...)
	s.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Errorf("index %d: block=%v, sample=%v", i, buf[i], want[i])
		}
	}
}

func TestProcessBlock_SplitMatchesWhole(t *testing.T) {
	c := Coefficients{B0: 1.5, B1: -2.7, B2: 1.2, A1: -1.69, A2: 0.73}
	input := make([]float64, 257)
	for i := range input {
		input[i] = math.Sin(float64(i) * 0.37)
	}

	whole := NewSection(c)
	a := append([]float64(nil), input...)
	whole.ProcessBlock(a)

	for _, split := range []int{1, 2, 64, 128, 200} {
		s := NewSection(c)
		b := append([]float64(nil), input...)
		s.ProcessBlock(b[:split])
		s.ProcessBlock(b[split:])

		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("split=%d index %d: whole=%v split=%v", split, i, a[i], b[i])
			}
		}
	}
}

func TestProcessBlockTo_MatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.1}
	src := []float64{1, -0.5, 0.25, 0, 0.75}

	ref := NewSection(c)
	s := NewSection(c)
	dst := make([]float64, len(src))
	s.ProcessBlockTo(dst, src)

	for i, x := range src {
		want := ref.ProcessSample(x)
		if !almostEqual(dst[i], want, eps) {
			t.Errorf("index %d: got %v, want %v", i, dst[i], want)
		}
	}

	if src[0] != 1 {
		t.Fatal("ProcessBlockTo modified src")
	}
}

func TestProcessSample_PureDelay(t *testing.T) {
	// H(z) = z^-2
	s := NewSection(Coefficients{B2: 1})
	input := []float64{1, 2, 3, 4, 5}
	want := []float64{0, 0, 1, 2, 3}
	for i, x := range input {
		if y := s.ProcessSample(x); y != want[i] {
			t.Errorf("index %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestReset(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5, A1: -0.5})
	s.ProcessSample(1)
	s.ProcessSample(1)
	s.Reset()

	if st := s.State(); st != (State{}) {
		t.Fatalf("state after reset: %+v", st)
	}
}

func TestState_SaveRestore(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.5, A2: 0.1}
	s := NewSection(c)
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	saved := s.State()
	y1 := s.ProcessSample(0.25)

	s.SetState(saved)
	y2 := s.ProcessSample(0.25)

	if y1 != y2 {
		t.Fatalf("restored state produced %v, want %v", y2, y1)
	}
}

func TestProcessSample_NaNPropagates(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5, A1: -0.5})
	s.ProcessSample(0.1)
	if y := s.ProcessSample(math.NaN()); !math.IsNaN(y) {
		t.Fatalf("got %v, want NaN", y)
	}
	if y := s.ProcessSample(0); !math.IsNaN(y) {
		t.Fatalf("NaN should stay in the recursion, got %v", y)
	}
}

func TestProcessSample_StabilityLongRun(t *testing.T) {
	// Stable poles (|p| < 1): output must stay bounded for a bounded input.
	s := NewSection(Coefficients{B0: 0.1, B1: 0.2, B2: 0.1, A1: -1.5, A2: 0.7})
	for i := range 100000 {
		y := s.ProcessSample(math.Sin(float64(i) * 0.01))
		if math.IsNaN(y) || math.Abs(y) > 100 {
			t.Fatalf("unbounded output at %d: %v", i, y)
		}
	}
}

package biquad

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The difference equation is
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// State is the Direct Form I recursion memory of one section: the two most
// recent inputs and the two most recent outputs.
type State struct {
	X1, X2 float64
	Y1, Y2 float64
}

// Process filters one sample with coefficients c and advances s.
func (s *State) Process(c *Coefficients, x float64) float64 {
	y := c.B0*x + c.B1*s.X1 + c.B2*s.X2 - c.A1*s.Y1 - c.A2*s.Y2
	s.X2, s.X1 = s.X1, x
	s.Y2, s.Y1 = s.Y1, y

	return y
}

// ProcessBlock filters buf in-place with coefficients c and advances s.
func (s *State) ProcessBlock(c *Coefficients, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s.X1, s.X2, s.Y1, s.Y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.X1, s.X2, s.Y1, s.Y2 = x1, x2, y1, y2
}

// Section is a single biquad filter with coefficients and its own state.
type Section struct {
	Coefficients

	state State
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	return s.state.Process(&s.Coefficients, x)
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
//
// ProcessBlock and repeated ProcessSample calls produce bit-identical
// output for the same input, regardless of how the input is split.
func (s *Section) ProcessBlock(buf []float64) {
	s.state.ProcessBlock(&s.Coefficients, buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	copy(dst, src)
	s.state.ProcessBlock(&s.Coefficients, dst[:len(src)])
}

// Reset clears the recursion memory to zero.
func (s *Section) Reset() {
	s.state = State{}
}

// State returns the current recursion memory.
func (s *Section) State() State {
	return s.state
}

// SetState restores a previously saved recursion memory.
func (s *Section) SetState(state State) {
	s.state = state
}

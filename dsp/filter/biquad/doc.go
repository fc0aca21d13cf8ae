// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form I processing for a single second-order
// section defined by [Coefficients]. Its recursion memory is an explicit
// [State] value holding the two most recent inputs and outputs, so callers
// can snapshot, restore, or thread it through their own processing loops.
// Multiple sections are cascaded via [Chain].
//
// This package provides the processing runtime only. Coefficient design
// (for example the BS.1770 K-weighting curve) lives in dsp/filter/weighting.
package biquad

// Package resample provides integer-factor oversampling for peak detection.
//
// [Oversampler] is a streaming polyphase FIR interpolator built from a
// Kaiser-windowed sinc prototype. It keeps its delay line between calls, so
// a signal fed in arbitrary chunks yields exactly the same output as the
// signal fed at once.
//
// Quality modes:
//   - QualityFast: shortest filters
//   - QualityBalanced: default, 12 taps per phase as commonly used for
//     BS.1770 true-peak metering
//   - QualityBest: longer filters with a flatter passband
//
// Default quality/performance matrix:
//
//	mode            taps/phase   cutoff   kaiser beta
//	QualityFast     8            0.90     4
//	QualityBalanced 12           0.95     5
//	QualityBest     32           0.95     8
//
// [SpectralUpsample] is an offline band-limited interpolator that zero-pads
// the spectrum of a whole signal. It is the reference the streaming
// oversampler approximates.
package resample

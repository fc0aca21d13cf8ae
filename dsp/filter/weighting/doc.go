// Package weighting provides the ITU-R BS.1770 K-weighting filter.
//
// K-weighting is a two-stage cascade applied to every channel before its
// energy is measured:
//
//   - Stage 1, a high-shelf of about +4 dB above 1.5 kHz that models the
//     acoustic effect of the head.
//   - Stage 2, the revised low-frequency B-curve (RLB), a second-order
//     high-pass near 38 Hz.
//
// BS.1770 publishes coefficients for 48 kHz only. This package derives
// them for any sample rate from the analog prototype parameters through the
// prewarped bilinear transform, reproducing the published values at 48 kHz.
// Sample rates at or below twice the shelf frequency cannot host the shelf
// and are rejected.
//
// The returned [biquad.Chain] can be used for both real-time sample-by-sample
// processing and offline block processing.
package weighting

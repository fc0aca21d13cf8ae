// Package loudness implements ITU-R BS.1770 / EBU R128 loudness and
// true-peak metering.
//
// A [Meter] is bound to one sample rate and channel count. Audio is fed in
// any number of chunks through [Meter.Ingest], [Meter.IngestPlanar] or
// [Meter.IngestBuffer]; every chunk runs through
//
//   - a per-channel K-weighting filter (high-shelf pre-filter plus RLB
//     high-pass),
//   - a block accumulator that closes one 100 ms hop at a time and derives
//     400 ms momentary blocks and 3 s short-term windows from the last hop
//     energies,
//   - a per-channel 4x oversampling true-peak detector fed with the raw
//     samples.
//
// Results are computed from the accumulated block series when queried:
// integrated loudness with the two-stage gate (absolute -70 LKFS, relative
// -10 LU in the energy domain), the short-term and momentary sequences, the
// EBU Tech 3342 loudness range and per-channel peaks. The first query
// finalizes the meter; later ingestion fails with [ErrFinalized].
//
// Loudness is reported in LUFS (LKFS), peaks in dBTP or dBFS. Measurements
// that have no defined value, such as the integrated loudness of digital
// silence, are reported with ok == false.
package loudness

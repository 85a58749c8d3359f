// Package preprocessing conditions multichannel sEMG recordings before
// blind-source-separation decomposition into motor-unit firing sequences.
//
// A recording is a real-valued matrix with one row per channel and one
// column per time sample; row order maps to the physical electrode grid
// and is preserved by every operation. Two stateless operations are
// provided:
//
//   - Extend appends time-delayed copies of every channel, turning a
//     convolutive separation problem into an instantaneous one.
//   - Whiten applies a symmetric (ZCA) whitening transform so that the
//     channel covariance of the output is approximately the identity.
//
// Both are pure functions of their input and are safe to call
// concurrently on independent matrices.
//
// Whitening assumes the caller supplies an adequately sampled signal:
// the covariance estimate is only well conditioned when the number of
// samples clearly exceeds the number of (extended) channels. The eps
// regularizer guards against near-singular covariance matrices, not
// against malformed inputs.
package preprocessing

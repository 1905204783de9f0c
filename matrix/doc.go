// Package matrix provides the small dense linear-algebra kernels that the
// sigmakit fitting code is built on.
//
// What & Why:
//
//	Polynomial and power-law resampling reduce to overdetermined least-squares
//	problems on Vandermonde design matrices; the constrained cubic spline
//	reduces to a tridiagonal system. This package keeps those kernels in one
//	place with strict validation and sentinel errors, instead of scattering
//	ad-hoc loops across the resampler.
//
// Contents:
//   - Dense: row-major storage with bound-checked At/Set.
//   - Mul, Transpose, MatVec: reference products.
//   - QR: Householder factorization of tall matrices (A = Q·R).
//   - LeastSquares: min‖Ax−b‖ via Householder reflections + back substitution,
//     with a rank report instead of a hard failure on tiny pivots.
//   - Vandermonde: polynomial design matrix.
//
// Complexity:
//
//	QR/LeastSquares O(m·n²), Mul O(r·n·c).
package matrix

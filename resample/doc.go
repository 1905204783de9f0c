// Package resample changes the length of a sigma sequence under a chosen
// interpolation policy.
//
// What & Why:
//
//	Samplers index schedules by step count, so a schedule built for one step
//	count often has to be stretched or squeezed to another. Every policy here
//	maps a source of length n onto exactly m output samples and keeps the
//	source precision and execution target.
//
// Modes:
//   - Linear, Nearest: index-domain resampling with aligned corners;
//     Nearest breaks ties toward the lower index.
//   - Polynomial: least-squares fit of degree min(order, n-1) over [0,1].
//   - Spline: clamped cubic spline (zero slope at both ends); endpoints exact.
//   - Exponential: linear resampling of log(σ), exponentiated back.
//   - Power: y = a·x^b fitted in log-log space over 1-indexed positions.
//   - Model: a small 1→16→32→1 ReLU network trained with Adam; deterministic
//     for a fixed seed, approximate otherwise.
//
// Errors:
//
//	All failures wrap a sigma sentinel (ErrInvalidArgument, ErrInsufficientData,
//	ErrDomain) inside a *sigma.Error naming the operation and parameter.
//	Validation precedes any allocation of the result.
package resample

// Package sigma defines the sigma-sequence value type shared by every other
// sigmakit package.
//
// 🚀 What is a sigma sequence?
//
//	An ordered, finite list of noise magnitudes consumed one per sampling
//	step by an iterative denoising sampler. Schedules usually decrease from a
//	large sigma toward zero, and a trailing 0 is the conventional "no further
//	noise" terminal pad.
//
// ✨ Key properties:
//   - Immutable by convention: every operation returns a fresh Sequence.
//   - Explicit precision (16/32/64-bit) carried per value, never process-wide.
//   - Opaque execution target carried through untouched.
//   - Literal text parsing ("14.6, 9.7 6.1 ... 0").
//
// ⚙️ Usage:
//
//	seq, err := sigma.Parse("14.61 7.49 3.07 0.99 0.03 0", sigma.WithPrecision(sigma.Float32))
//	if err != nil {
//		// errors.Is(err, sigma.ErrInvalidArgument)
//	}
//	fmt.Println(seq.Len(), seq.First(), seq.IsNonIncreasing())
//
// Errors:
//
//	The package also owns the error taxonomy used across sigmakit
//	(ErrInvalidArgument, ErrInsufficientData, ErrDomain, ErrDegenerateRange)
//	and the *Error type that attaches operation/parameter context.
package sigma

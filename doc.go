// Package sigmakit builds, reshapes and composes noise schedules for
// diffusion samplers: the descending sigma sequences that tell a sampler
// how much noise to remove at every step.
//
// 🚀 What is sigmakit?
//
//	A pure-Go toolkit organised around one immutable value type:
//		• sigma/     — Sequence, precision and execution-target metadata, parsing
//		• resample/  — change a schedule's length (linear, spline, polynomial, trained fit…)
//		• schedule/  — closed-form families and named model schedulers
//		• compose/   — pad, rescale and lay out a scheduler run from a YAML/CUE request
//		• transform/ — element-wise arithmetic, shaping, statistics and formulas
//		• expr/      — the formula language used by transform.Formula
//		• dtw/       — compare schedules of different lengths
//		• matrix/    — the small dense kernels the fits run on
//
// ✨ Guarantees
//
//   - Every operation returns a new Sequence; inputs are never mutated.
//   - Errors wrap one of four sentinels in sigma, so callers branch with errors.Is.
//   - Randomness is seeded and reproducible.
//
// Quick example:
//
//	s, _ := schedule.NewSynthesizer().Synthesize("karras", 10, schedule.DefaultValueRange, schedule.Params{})
//	t, _ := resample.Resample(s, 25, resample.Spline)
//
// The sigmactl command in cmd/sigmactl exposes the same operations on the
// command line.
//
//	go install github.com/katalvlaran/sigmakit/cmd/sigmactl@latest
package sigmakit

// Package schedule synthesizes sigma schedules.
//
// What & Why:
//
//	A sampler needs a concrete, usually non-increasing list of noise levels.
//	This package produces one from a family name and a step count, either
//	from a closed-form formula computed in-process or by asking a model's
//	noise table through a named scheduler.
//
// Closed-form families (no model needed):
//   - Constant:                     steps+1 values, start then end after a cutoff.
//   - Tangent, TangentTwoStage,
//     TangentTwoStageSimple:        arctangent profiles, optionally two-stage.
//   - Karras, PolyExponential:      ρ-parameterized spacing plus a terminal zero.
//   - IterationKarras,
//     IterationPolyExp:             up/down ramps with a parallel momentum list.
//   - KLOptimal:                    standard, mutual-information, ELBO profiles.
//
// Named schedulers (need a Sampling):
//
//	A Registry maps canonical names (normal, karras, exponential, sgm_uniform,
//	simple, ddim_uniform, beta, beta57, linear_quadratic, kl_optimal,
//	simple_exponential) to SchedulerFunc. The Resolver applies the denoise
//	fraction and trims the result to the last steps+1 entries.
//	DiscreteSampling is a reference 1000-step noise table.
//
// Synthesizer ties both together behind one Synthesize(name, steps, range,
// params) call.
//
// Errors:
//
//	Parameter problems wrap sigma.ErrInvalidArgument, log-domain problems
//	sigma.ErrDomain, zero-width normalizations sigma.ErrDegenerateRange.
//	ErrUnknownScheduler and ErrNoModel also match sigma.ErrInvalidArgument.
package schedule

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides a purely-functional, five-channel effect
// description and its stack-based interpreter.
//
// The core type [Effect] describes a computation carrying an
// append-only log of W entries, a state S threaded from input to
// output, a read-only environment R, a possibly-failing error channel
// E, and a success value A. Building an Effect performs no work: a
// value is an immutable tree over nine primitive instructions, and the
// run facade folds that tree into a final (log, cause or state/value)
// outcome.
//
// # Design Philosophy
//
// eff provides:
//   - A minimal primitive instruction set; every combinator compiles
//     down to it
//   - A defunctionalized, type-erased evaluation core with typed
//     construction and run boundaries
//   - An iterative trampoline: host stack usage is O(1) in tree depth,
//     with the continuation stack as the only recursive dynamic
//
// # Primitives
//
// Construction:
//
//   - [Succeed], [Fail], [FailCause]: pure outcomes
//   - [Modify]: atomic state transition ([Get], [Set], [Update],
//     [Gets] are each one Modify)
//   - [Log]: append one log entry
//   - [Access], [AccessM], [Provide]: environment read and scoped
//     installation
//   - [FlatMap]: sequencing
//   - [FoldCauseM]: unified recovery, the only way to intercept a
//     failure, and the delimiter of a log-retention scope
//   - [Suspend]: deferred construction
//   - [Attempt]: host panic capture (runtime errors re-panic)
//
// # Interpreter
//
// The machine dispatches on a dense instruction tag and maintains four
// aligned stacks: continuations (plain closures and fold records),
// environments, log builders, and ClearLogOnError flags. A FlatMap
// whose child is Succeed or Modify applies its continuation inline
// without touching the continuation stack, so sequencing in which each
// continuation returns the next FlatMap over a pure step runs with a
// flat stack. A left-nested chain still pushes one continuation per
// level above the innermost FlatMap.
//
// A failure unwinds the continuation stack to the nearest fold record,
// skipping plain continuations. Each fold scope owns a log builder:
// merged into its parent on success unconditionally, merged or
// discarded on failure per the innermost [ClearLogOnError] /
// [KeepLogOnError] flag. The failure path restores the state observed
// at fold entry; the success path keeps the child's output state.
//
// # Cause Algebra
//
// Failures are structured values: [Single] leaves composed with [Then]
// (sequential) and [Both] (accumulating). Causes stay trees inside the
// run; [Cause.First] and [Cause.ToList] flatten on demand. The
// accumulating combinators [ZipWithPar], [TupledPar], and
// [CollectAllPar] compose the causes of failing operands with Both;
// execution stays sequential.
//
// # Run Facade
//
//   - [RunAll]: log plus cause-or-state/value, the general form
//   - [Run], [RunValue], [RunState], [RunLog]: infallible projections
//     (they panic if the tree fails)
//   - [RunEither]: leftmost error leaf via [Cause.First]
//   - [RunValidation]: full leaf list, never empty on failure
//   - [RunAsync]: the interpreter run on a fresh goroutine, outcome
//     delivered on a channel
//
// # Example
//
//	type env struct{ base int }
//
//	m := eff.FlatMap(
//		eff.Log[int, env, string]("start"),
//		func(struct{}) eff.Effect[string, int, env, string, int] {
//			return eff.AccessM[string, int, string](func(e env) eff.Effect[string, int, env, string, int] {
//				return eff.Modify[string, env, string](func(s int) (int, int) {
//					return s + 1, s + e.base
//				})
//			})
//		},
//	)
//
//	log, result := eff.RunAll(eff.Provide(env{base: 10}, m), 1)
//	// log == []string{"start"}, state 2, value 11
package eff

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Run facade. RunAll is the general entry point; the other variants
// specialize its result to common shapes. Trees that use Access must
// carry their environment via Provide before reaching a runner.

// RunAll interprets the tree with the given initial state and returns
// the full outcome: the final log and either the failure cause or the
// final state paired with the value.
func RunAll[W, S, R, E, A any](m Effect[W, S, R, E, A], initial S) ([]W, Either[Cause[E], Pair[S, A]]) {
	entries, state, value, failed := evaluate(m.instr, initial)
	log := make([]W, len(entries))
	for i, entry := range entries {
		log[i] = entry.(W)
	}
	if failed {
		return log, NewFailure[Pair[S, A]](value.(Cause[E]))
	}
	return log, NewSuccess[Cause[E]](Pair[S, A]{First: state.(S), Second: value.(A)})
}

// Run interprets an infallible tree, returning the final state and
// value and discarding the log. Panics with the cause if the tree
// fails; use RunAll or RunEither for fallible trees.
func Run[W, S, R, E, A any](m Effect[W, S, R, E, A], initial S) (S, A) {
	_, result := RunAll(m, initial)
	if cause, isFailure := result.Failure(); isFailure {
		panic("eff: run of a failing computation: " + cause.String())
	}
	pair, _ := result.Success()
	return pair.First, pair.Second
}

// RunValue interprets an infallible tree and returns only the value.
func RunValue[W, S, R, E, A any](m Effect[W, S, R, E, A], initial S) A {
	_, a := Run(m, initial)
	return a
}

// RunState interprets an infallible tree and returns only the final state.
func RunState[W, S, R, E, A any](m Effect[W, S, R, E, A], initial S) S {
	s, _ := Run(m, initial)
	return s
}

// RunEither interprets the tree and projects the outcome to the error
// channel: the leftmost error leaf on failure, the value on success.
// Log and final state are discarded.
func RunEither[W, S, R, E, A any](m Effect[W, S, R, E, A], initial S) Either[E, A] {
	_, result := RunAll(m, initial)
	if cause, isFailure := result.Failure(); isFailure {
		return NewFailure[A](cause.First())
	}
	pair, _ := result.Success()
	return NewSuccess[E](pair.Second)
}

// RunLog interprets an infallible tree, returning the log and the
// value. Panics with the cause if the tree fails.
func RunLog[W, S, R, E, A any](m Effect[W, S, R, E, A], initial S) ([]W, A) {
	log, result := RunAll(m, initial)
	if cause, isFailure := result.Failure(); isFailure {
		panic("eff: run of a failing computation: " + cause.String())
	}
	pair, _ := result.Success()
	return log, pair.Second
}

// RunValidation interprets the tree, projecting a failure to the full
// in-order list of error leaves. The failure slice is never empty: a
// cause always yields at least one leaf.
func RunValidation[W, S, R, E, A any](m Effect[W, S, R, E, A], initial S) ([]W, Either[[]E, A]) {
	log, result := RunAll(m, initial)
	if cause, isFailure := result.Failure(); isFailure {
		return log, NewFailure[A](cause.ToList())
	}
	pair, _ := result.Success()
	return log, NewSuccess[[]E](pair.Second)
}

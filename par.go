// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Accumulating combinators. "Par" denotes outcome composition, not
// concurrent execution: operands run sequentially on the same
// goroutine, left to right, and failures accumulate with Both instead
// of short-circuiting. Built strictly above FoldCauseM and FailCause.

// capture folds an effect into its outcome so the next operand runs
// regardless of failure. The fold's failure path restores the state
// observed at entry, so a failing operand leaves no state behind.
func capture[W, S, R, E, A any](m Effect[W, S, R, E, A]) Effect[W, S, R, E, Either[Cause[E], A]] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E, Either[Cause[E], A]] {
		return Succeed[W, S, R, E](NewFailure[A](c))
	}, func(a A) Effect[W, S, R, E, Either[Cause[E], A]] {
		return Succeed[W, S, R, E](NewSuccess[Cause[E]](a))
	})
}

// ZipWithPar runs both effects and combines their values with f. When
// both fail the causes compose as Both(left, right); a single failure
// propagates alone.
func ZipWithPar[W, S, R, E, A, B, C any](ma Effect[W, S, R, E, A], mb Effect[W, S, R, E, B], f func(A, B) C) Effect[W, S, R, E, C] {
	return FlatMap(capture(ma), func(ra Either[Cause[E], A]) Effect[W, S, R, E, C] {
		return FlatMap(capture(mb), func(rb Either[Cause[E], B]) Effect[W, S, R, E, C] {
			ca, aFailed := ra.Failure()
			cb, bFailed := rb.Failure()
			switch {
			case aFailed && bFailed:
				return FailCause[W, S, R, C](Both(ca, cb))
			case aFailed:
				return FailCause[W, S, R, C](ca)
			case bFailed:
				return FailCause[W, S, R, C](cb)
			default:
				a, _ := ra.Success()
				b, _ := rb.Success()
				return Succeed[W, S, R, E](f(a, b))
			}
		})
	})
}

// TupledPar runs both effects and pairs their values, accumulating
// failures with Both.
func TupledPar[W, S, R, E, A, B any](ma Effect[W, S, R, E, A], mb Effect[W, S, R, E, B]) Effect[W, S, R, E, Pair[A, B]] {
	return ZipWithPar(ma, mb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// CollectAllPar runs every effect in order, accumulating all failure
// causes with left-associated Both. Succeeds with every value only when
// every operand succeeds.
func CollectAllPar[W, S, R, E, A any](ms []Effect[W, S, R, E, A]) Effect[W, S, R, E, []A] {
	var step func(i int, acc []A, failed bool, cause Cause[E]) Effect[W, S, R, E, []A]
	step = func(i int, acc []A, failed bool, cause Cause[E]) Effect[W, S, R, E, []A] {
		if i == len(ms) {
			if failed {
				return FailCause[W, S, R, []A](cause)
			}
			return Succeed[W, S, R, E](acc)
		}
		return FlatMap(capture(ms[i]), func(r Either[Cause[E], A]) Effect[W, S, R, E, []A] {
			if c, isFailure := r.Failure(); isFailure {
				if failed {
					return step(i+1, acc, true, Both(cause, c))
				}
				return step(i+1, acc, true, c)
			}
			a, _ := r.Success()
			return step(i+1, append(acc, a), failed, cause)
		})
	}
	return Suspend(func() Effect[W, S, R, E, []A] {
		return step(0, make([]A, 0, len(ms)), false, Cause[E]{})
	})
}

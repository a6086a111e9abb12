// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Error-channel combinators. Everything here is sugar over FoldCauseM,
// FailCause, and the Cause algebra.

// FoldM recovers from a failure with a typed error handler. The handler
// observes the leftmost error of the cause; use FoldCauseM to observe
// the full cause tree.
func FoldM[W, S, R, E, E2, A, B any](
	m Effect[W, S, R, E, A],
	onFailure func(E) Effect[W, S, R, E2, B],
	onSuccess func(A) Effect[W, S, R, E2, B],
) Effect[W, S, R, E2, B] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E2, B] {
		return onFailure(c.First())
	}, onSuccess)
}

// Fold folds both exits into a pure value. The result never fails.
func Fold[W, S, R, E, A, B any](m Effect[W, S, R, E, A], onFailure func(E) B, onSuccess func(A) B) Effect[W, S, R, E, B] {
	return FoldM(m, func(e E) Effect[W, S, R, E, B] {
		return Succeed[W, S, R, E](onFailure(e))
	}, func(a A) Effect[W, S, R, E, B] {
		return Succeed[W, S, R, E](onSuccess(a))
	})
}

// CatchAll recovers from any failure with the leftmost error.
func CatchAll[W, S, R, E, E2, A any](m Effect[W, S, R, E, A], h func(E) Effect[W, S, R, E2, A]) Effect[W, S, R, E2, A] {
	return FoldM(m, h, func(a A) Effect[W, S, R, E2, A] {
		return Succeed[W, S, R, E2](a)
	})
}

// OrElse falls back to that when m fails, discarding m's cause.
func OrElse[W, S, R, E, E2, A any](m Effect[W, S, R, E, A], that Effect[W, S, R, E2, A]) Effect[W, S, R, E2, A] {
	return CatchAll(m, func(E) Effect[W, S, R, E2, A] { return that })
}

// MapErrorCause transforms the full failure cause.
func MapErrorCause[W, S, R, E, E2, A any](m Effect[W, S, R, E, A], f func(Cause[E]) Cause[E2]) Effect[W, S, R, E2, A] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E2, A] {
		return FailCause[W, S, R, A](f(c))
	}, func(a A) Effect[W, S, R, E2, A] {
		return Succeed[W, S, R, E2](a)
	})
}

// MapError transforms every error leaf of the failure cause.
func MapError[W, S, R, E, E2, A any](m Effect[W, S, R, E, A], f func(E) E2) Effect[W, S, R, E2, A] {
	return MapErrorCause(m, func(c Cause[E]) Cause[E2] {
		return MapCause(c, f)
	})
}

// Bimap transforms both channels: error leaves with f, the success
// value with g. On a failing computation the state visible afterwards
// is the state at Bimap entry; the mapping is not observable as a state
// change.
func Bimap[W, S, R, E, E2, A, B any](m Effect[W, S, R, E, A], f func(E) E2, g func(A) B) Effect[W, S, R, E2, B] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E2, B] {
		return FailCause[W, S, R, B](MapCause(c, f))
	}, func(a A) Effect[W, S, R, E2, B] {
		return Succeed[W, S, R, E2](g(a))
	})
}

// TapError runs f on the leftmost error of a failure, then re-fails
// with the original cause. Failures of f itself replace the original.
func TapError[W, S, R, E, A, X any](m Effect[W, S, R, E, A], f func(E) Effect[W, S, R, E, X]) Effect[W, S, R, E, A] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E, A] {
		return ZipRight(f(c.First()), FailCause[W, S, R, A](c))
	}, func(a A) Effect[W, S, R, E, A] {
		return Succeed[W, S, R, E](a)
	})
}

// TapErrorCause runs f on the full cause of a failure, then re-fails
// with Then(original, f's cause) when f itself fails, and with the
// original cause when f succeeds.
func TapErrorCause[W, S, R, E, A, X any](m Effect[W, S, R, E, A], f func(Cause[E]) Effect[W, S, R, E, X]) Effect[W, S, R, E, A] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E, A] {
		return FoldCauseM(f(c), func(c2 Cause[E]) Effect[W, S, R, E, A] {
			return FailCause[W, S, R, A](Then(c, c2))
		}, func(X) Effect[W, S, R, E, A] {
			return FailCause[W, S, R, A](c)
		})
	}, func(a A) Effect[W, S, R, E, A] {
		return Succeed[W, S, R, E](a)
	})
}

// RefineOrDie applies a partial refinement to every error leaf of a
// failure cause. A leaf outside the refinement's domain panics out of
// the run as a host exception.
func RefineOrDie[W, S, R, E, E2, A any](m Effect[W, S, R, E, A], pf func(E) (E2, bool)) Effect[W, S, R, E2, A] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E2, A] {
		refined, ok, miss := mapCausePartial(c, pf)
		if !ok {
			panic(UnrefinedError[E]{Leaf: miss})
		}
		return FailCause[W, S, R, A](refined)
	}, func(a A) Effect[W, S, R, E2, A] {
		return Succeed[W, S, R, E2](a)
	})
}

// UnrefinedError is the panic payload for a RefineOrDie leaf outside
// the refinement's domain.
type UnrefinedError[E any] struct {
	Leaf E
}

func (e UnrefinedError[E]) Error() string {
	return "eff: error leaf outside refinement domain"
}

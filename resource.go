// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Resource safety sugar for exception-safe resource handling.
// These provide the minimal bracketed interface over FoldCauseM.

// Bracket provides failure-safe resource acquisition and release:
// acquire, then use, with release guaranteed to run on both exits of
// use. A failing release on the failure path takes precedence over the
// original cause; on the success path it fails the bracket.
func Bracket[W, S, R, E, RES, A any](
	acquire Effect[W, S, R, E, RES],
	release func(RES) Effect[W, S, R, E, struct{}],
	use func(RES) Effect[W, S, R, E, A],
) Effect[W, S, R, E, A] {
	return FlatMap(acquire, func(res RES) Effect[W, S, R, E, A] {
		return FoldCauseM(use(res), func(c Cause[E]) Effect[W, S, R, E, A] {
			return ZipRight(release(res), FailCause[W, S, R, A](c))
		}, func(a A) Effect[W, S, R, E, A] {
			return As(release(res), a)
		})
	})
}

// OnError runs cleanup only on the failure path, then re-fails with the
// original cause.
func OnError[W, S, R, E, A any](
	m Effect[W, S, R, E, A],
	cleanup func(Cause[E]) Effect[W, S, R, E, struct{}],
) Effect[W, S, R, E, A] {
	return FoldCauseM(m, func(c Cause[E]) Effect[W, S, R, E, A] {
		return ZipRight(cleanup(c), FailCause[W, S, R, A](c))
	}, func(a A) Effect[W, S, R, E, A] {
		return Succeed[W, S, R, E](a)
	})
}

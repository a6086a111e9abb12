// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Environment-channel sugar over Access and Provide.

// Environment produces the current environment itself.
func Environment[W, S, E, R any]() Effect[W, S, R, E, R] {
	return Access[W, S, E](func(r R) R { return r })
}

// ProvideSome runs m against an environment derived from the outer one,
// turning an Effect requiring R into one requiring R0.
func ProvideSome[W, S, E, R0, R, A any](f func(R0) R, m Effect[W, S, R, E, A]) Effect[W, S, R0, E, A] {
	return AccessM[W, S, E](func(r0 R0) Effect[W, S, R0, E, A] {
		// The tree is type-erased; re-rooting the environment type is a
		// construction-time cast, not a runtime conversion.
		return Effect[W, S, R0, E, A]{instr: Provide(f(r0), m).instr}
	})
}

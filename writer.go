// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Log-channel sugar over Log and the ClearLogOnError flag.

// LogAll appends entries in order.
func LogAll[S, R, E, W any](ws ...W) Effect[W, S, R, E, struct{}] {
	return As(ForEach(ws, func(w W) Effect[W, S, R, E, struct{}] {
		return Log[S, R, E](w)
	}), struct{}{})
}

// ClearLogOnError marks m's scope so that log entries produced inside a
// failing fold scope are discarded at the scope boundary.
func ClearLogOnError[W, S, R, E, A any](m Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return flagged(m, FlagClearLogOnError, true)
}

// KeepLogOnError marks m's scope so that log entries survive failing
// fold scopes, overriding an enclosing ClearLogOnError.
func KeepLogOnError[W, S, R, E, A any](m Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return flagged(m, FlagClearLogOnError, false)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// State-channel sugar. Get, Set, and Update are each one Modify.

// Get produces the current state.
func Get[W, R, E, S any]() Effect[W, S, R, E, S] {
	return Modify[W, R, E](func(s S) (S, S) {
		return s, s
	})
}

// Set replaces the current state.
func Set[W, R, E, S any](s S) Effect[W, S, R, E, struct{}] {
	return Modify[W, R, E](func(S) (S, struct{}) {
		return s, struct{}{}
	})
}

// Update transforms the current state.
func Update[W, R, E, S any](f func(S) S) Effect[W, S, R, E, struct{}] {
	return Modify[W, R, E](func(s S) (S, struct{}) {
		return f(s), struct{}{}
	})
}

// Gets produces a projection of the current state.
func Gets[W, R, E, S, A any](f func(S) A) Effect[W, S, R, E, A] {
	return Modify[W, R, E](func(s S) (S, A) {
		return s, f(s)
	})
}

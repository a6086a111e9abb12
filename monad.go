// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Functor and monad sugar over the primitives.
//
// Minimal definition: Succeed (unit) and FlatMap are necessary and
// sufficient. Everything else here compiles to trees of the two, so
// the interpreter only ever sees primitive instructions.

// Map applies a pure function to the success value.
func Map[W, S, R, E, A, B any](m Effect[W, S, R, E, A], f func(A) B) Effect[W, S, R, E, B] {
	return FlatMap(m, func(a A) Effect[W, S, R, E, B] {
		return Succeed[W, S, R, E](f(a))
	})
}

// As replaces the success value.
func As[W, S, R, E, A, B any](m Effect[W, S, R, E, A], b B) Effect[W, S, R, E, B] {
	return Map(m, func(A) B { return b })
}

// Flatten collapses a nested effect.
func Flatten[W, S, R, E, A any](m Effect[W, S, R, E, Effect[W, S, R, E, A]]) Effect[W, S, R, E, A] {
	return FlatMap(m, func(inner Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
		return inner
	})
}

// ZipWith sequences two effects and combines their values with f.
func ZipWith[W, S, R, E, A, B, C any](ma Effect[W, S, R, E, A], mb Effect[W, S, R, E, B], f func(A, B) C) Effect[W, S, R, E, C] {
	return FlatMap(ma, func(a A) Effect[W, S, R, E, C] {
		return Map(mb, func(b B) C { return f(a, b) })
	})
}

// Pair groups two sequenced results: the product of [Zip] and
// [TupledPar], and the state/value product of a successful run.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip sequences two effects and pairs their values.
func Zip[W, S, R, E, A, B any](ma Effect[W, S, R, E, A], mb Effect[W, S, R, E, B]) Effect[W, S, R, E, Pair[A, B]] {
	return ZipWith(ma, mb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// ZipLeft sequences two effects, keeping the first value.
func ZipLeft[W, S, R, E, A, B any](ma Effect[W, S, R, E, A], mb Effect[W, S, R, E, B]) Effect[W, S, R, E, A] {
	return FlatMap(ma, func(a A) Effect[W, S, R, E, A] {
		return As(mb, a)
	})
}

// ZipRight sequences two effects, keeping the second value.
func ZipRight[W, S, R, E, A, B any](ma Effect[W, S, R, E, A], mb Effect[W, S, R, E, B]) Effect[W, S, R, E, B] {
	return FlatMap(ma, func(A) Effect[W, S, R, E, B] {
		return mb
	})
}

// When runs m only when cond holds.
func When[W, S, R, E any](cond bool, m Effect[W, S, R, E, struct{}]) Effect[W, S, R, E, struct{}] {
	if cond {
		return m
	}
	return Unit[W, S, R, E]()
}

// Unless runs m only when cond does not hold.
func Unless[W, S, R, E any](cond bool, m Effect[W, S, R, E, struct{}]) Effect[W, S, R, E, struct{}] {
	return When(!cond, m)
}

// RepeatN runs m once and then repeats it n more times, producing the
// last value. The tree is built lazily, one repetition per step.
func RepeatN[W, S, R, E, A any](m Effect[W, S, R, E, A], n int) Effect[W, S, R, E, A] {
	return FlatMap(m, func(a A) Effect[W, S, R, E, A] {
		if n <= 0 {
			return Succeed[W, S, R, E](a)
		}
		return RepeatN(m, n-1)
	})
}

// ForEach runs f over every element in order, collecting the results.
// The tree is built lazily during the run, so inputs of any length stay
// within the interpreter's constant host-stack bound.
func ForEach[W, S, R, E, A, B any](as []A, f func(A) Effect[W, S, R, E, B]) Effect[W, S, R, E, []B] {
	var step func(i int, acc []B) Effect[W, S, R, E, []B]
	step = func(i int, acc []B) Effect[W, S, R, E, []B] {
		if i == len(as) {
			return Succeed[W, S, R, E](acc)
		}
		return FlatMap(f(as[i]), func(b B) Effect[W, S, R, E, []B] {
			return step(i+1, append(acc, b))
		})
	}
	return Suspend(func() Effect[W, S, R, E, []B] {
		return step(0, make([]B, 0, len(as)))
	})
}

// CollectAll runs the effects in order, collecting their values.
func CollectAll[W, S, R, E, A any](ms []Effect[W, S, R, E, A]) Effect[W, S, R, E, []A] {
	return ForEach(ms, func(m Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
		return m
	})
}

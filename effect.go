// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "runtime"

// Effect is an immutable description of a computation carrying five
// channels: an append-only log of W entries, a state S threaded from
// input to output, a read-only environment R, a possibly-failing error
// channel E, and a success value A.
//
// An Effect is a tree of primitive instructions. Building one performs
// no work; the run facade in run.go interprets the tree. Trees are
// immutable and freely shareable; each run allocates its own machine.
type Effect[W, S, R, E, A any] struct {
	instr *instruction
}

// Succeed lifts a pure value into an effect.
// It never fails and leaves the state untouched.
func Succeed[W, S, R, E, A any](a A) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: succeedNode(a)}
}

// Unit is the effect that succeeds with the unit value.
func Unit[W, S, R, E any]() Effect[W, S, R, E, struct{}] {
	return Effect[W, S, R, E, struct{}]{instr: succeedNode(unitValue)}
}

// Fail fails with a single-error cause. State is untouched.
func Fail[W, S, R, A, E any](e E) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: failNode(Single(e))}
}

// FailCause fails with the given cause verbatim. State is untouched.
func FailCause[W, S, R, A, E any](cause Cause[E]) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: failNode(cause)}
}

// Modify performs an atomic state transition producing a value.
func Modify[W, R, E, S, A any](f func(S) (S, A)) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: &instruction{
		tag: tagModify,
		modify: func(s Erased) (Erased, Erased) {
			s2, a := f(s.(S))
			return s2, a
		},
	}}
}

// Log appends one entry to the log channel.
func Log[S, R, E, W any](w W) Effect[W, S, R, E, struct{}] {
	return Effect[W, S, R, E, struct{}]{instr: &instruction{tag: tagLog, value: w}}
}

// Access reads the current environment and produces f(r).
// The environment must have been installed by an enclosing Provide;
// otherwise the run panics.
func Access[W, S, E, R, A any](f func(R) A) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: &instruction{
		tag: tagAccess,
		k: func(r Erased) *instruction {
			return succeedNode(f(r.(R)))
		},
	}}
}

// AccessM reads the current environment and continues with the effect
// f(r).
func AccessM[W, S, E, R, A any](f func(R) Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: &instruction{
		tag: tagAccess,
		k: func(r Erased) *instruction {
			return f(r.(R)).instr
		},
	}}
}

// Provide runs the effect with r installed as its environment for the
// duration of the child, shadowing any enclosing Provide.
func Provide[W, S, R, E, A any](r R, m Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: &instruction{tag: tagProvide, value: r, child: m.instr}}
}

// FlatMap sequences two effects: run m, feed its success value to f.
func FlatMap[W, S, R, E, A, B any](m Effect[W, S, R, E, A], f func(A) Effect[W, S, R, E, B]) Effect[W, S, R, E, B] {
	return Effect[W, S, R, E, B]{instr: &instruction{
		tag:   tagFlatMap,
		child: m.instr,
		k: func(a Erased) *instruction {
			return f(a.(A)).instr
		},
	}}
}

// FoldCauseM is the unified recovery primitive and the only way to
// intercept a failure. It delimits a log-retention scope: log entries
// produced by m are merged into the enclosing scope when m succeeds,
// and merged or discarded per the ClearLogOnError flag when m fails.
// On the failure path the state observed at entry is restored before
// onFailure runs; the success path retains m's output state.
func FoldCauseM[W, S, R, E, E2, A, B any](
	m Effect[W, S, R, E, A],
	onFailure func(Cause[E]) Effect[W, S, R, E2, B],
	onSuccess func(A) Effect[W, S, R, E2, B],
) Effect[W, S, R, E2, B] {
	return Effect[W, S, R, E2, B]{instr: &instruction{
		tag:   tagFold,
		child: m.instr,
		onFailure: func(c Erased) *instruction {
			return onFailure(c.(Cause[E])).instr
		},
		onSuccess: func(a Erased) *instruction {
			return onSuccess(a.(A)).instr
		},
	}}
}

// Suspend defers construction of an effect until the interpreter
// reaches it. Use it to avoid building large trees eagerly and to
// express recursive computations.
func Suspend[W, S, R, E, A any](thunk func() Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: &instruction{
		tag:   tagFlatMap,
		child: succeedNode(unitValue),
		k: func(Erased) *instruction {
			return thunk().instr
		},
	}}
}

// Attempt runs a host function, converting ordinary panics into domain
// failures. Fatal host errors (runtime.Error values) re-panic and
// escape the run. A panic value that is already an error becomes the
// failure directly; any other value is wrapped in a PanicError.
func Attempt[W, S, R, A any](f func() A) Effect[W, S, R, error, A] {
	return Effect[W, S, R, error, A]{instr: &instruction{
		tag:   tagFlatMap,
		child: succeedNode(unitValue),
		k: func(Erased) (next *instruction) {
			defer func() {
				if r := recover(); r != nil {
					if fatal, ok := r.(runtime.Error); ok {
						panic(fatal)
					}
					err, ok := r.(error)
					if !ok {
						err = PanicError{Value: r}
					}
					next = failNode(Single(err))
				}
			}()
			return succeedNode(f())
		},
	}}
}

// PanicError wraps a non-error panic value recovered by Attempt.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return "eff: recovered panic"
}

// flagged wraps m so that the given flag holds value on for the
// duration of m.
func flagged[W, S, R, E, A any](m Effect[W, S, R, E, A], flag FlagType, on bool) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{instr: &instruction{tag: tagFlag, flag: flag, flagOn: on, child: m.instr}}
}

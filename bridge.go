// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "context"

// Bridge to the host's asynchronous world. The interpreter itself is
// strictly sequential; the bridge runs it to completion on a fresh
// goroutine and lifts the outcome, never driving the machine from
// within another effect's continuation.

// Outcome is the terminal result of an asynchronous run.
type Outcome[W, S, E, A any] struct {
	Log    []W
	Result Either[Cause[E], Pair[S, A]]
}

// RunAsync interprets the tree on a new goroutine and delivers the
// outcome on the returned channel, which is closed after delivery.
// The channel is buffered, so delivery never blocks the runner. A
// context cancelled before the run starts skips the run entirely and
// yields a closed, empty channel; a run already underway is sequential
// and uninterruptible.
func RunAsync[W, S, R, E, A any](ctx context.Context, m Effect[W, S, R, E, A], initial S) <-chan Outcome[W, S, E, A] {
	out := make(chan Outcome[W, S, E, A], 1)
	go func() {
		defer close(out)
		if ctx.Err() != nil {
			return
		}
		log, result := RunAll(m, initial)
		out <- Outcome[W, S, E, A]{Log: log, Result: result}
	}()
	return out
}

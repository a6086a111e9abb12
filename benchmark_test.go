// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

// BenchmarkRunPureValue measures the floor cost of a run.
func BenchmarkRunPureValue(b *testing.B) {
	m := succeed(42)
	for b.Loop() {
		_ = eff.RunValue(m, 0)
	}
}

// BenchmarkFlatMapFusion measures the fused Succeed fast path.
func BenchmarkFlatMapFusion(b *testing.B) {
	m := succeed(64)
	for range 64 {
		next := m
		m = eff.FlatMap(succeed(0), func(int) testEffect { return next })
	}
	for b.Loop() {
		_ = eff.RunValue(m, 0)
	}
}

// BenchmarkModifyChain measures fused state transitions.
func BenchmarkModifyChain(b *testing.B) {
	step := func(s int) (int, int) { return s + 1, s }
	m := modify(step)
	for range 64 {
		next := m
		m = eff.FlatMap(modify(step), func(int) testEffect { return next })
	}
	for b.Loop() {
		_ = eff.RunState(m, 0)
	}
}

// BenchmarkFoldSuccess measures the fold push/merge cycle.
func BenchmarkFoldSuccess(b *testing.B) {
	m := foldCause(
		eff.ZipRight(logw("w"), succeed(1)),
		func(eff.Cause[string]) testEffect { return succeed(0) },
		succeed,
	)
	for b.Loop() {
		_, _ = runAll(m, 0)
	}
}

// BenchmarkUnwind measures failure unwinding through plain continuations.
func BenchmarkUnwind(b *testing.B) {
	inner := failWith("x")
	for range 16 {
		inner = eff.FlatMap(inner, func(x int) testEffect { return succeed(x) })
	}
	m := foldCause(inner, func(eff.Cause[string]) testEffect { return succeed(0) }, succeed)
	for b.Loop() {
		_, _ = runAll(m, 0)
	}
}

// BenchmarkLogAppend measures the log channel hot path.
func BenchmarkLogAppend(b *testing.B) {
	m := eff.LogAll[int, struct{}, string]("a", "b", "c", "d", "e", "f", "g", "h")
	for b.Loop() {
		_, _ = eff.RunAll(m, 0)
	}
}

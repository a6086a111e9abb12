// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
)

func TestMap(t *testing.T) {
	require.Equal(t, 6, eff.RunValue(eff.Map(succeed(3), func(v int) int { return v * 2 }), 0))
}

func TestAs(t *testing.T) {
	require.Equal(t, 9, eff.RunValue(eff.As(succeed(3), 9), 0))
}

func TestFlatten(t *testing.T) {
	nested := eff.Succeed[string, int, struct{}, string](succeed(5))
	require.Equal(t, 5, eff.RunValue(eff.Flatten(nested), 0))
}

func TestZipVariants(t *testing.T) {
	a, b := succeed(1), succeed(2)

	pair := eff.RunValue(eff.Zip(a, b), 0)
	require.Equal(t, eff.Pair[int, int]{First: 1, Second: 2}, pair)

	require.Equal(t, 3, eff.RunValue(eff.ZipWith(a, b, func(x, y int) int { return x + y }), 0))
	require.Equal(t, 1, eff.RunValue(eff.ZipLeft(a, b), 0))
	require.Equal(t, 2, eff.RunValue(eff.ZipRight(a, b), 0))
}

func TestZipShortCircuitsOnLeftFailure(t *testing.T) {
	ran := false
	right := eff.FlatMap(succeed(0), func(int) testEffect {
		ran = true
		return succeed(2)
	})
	_, result := eff.RunAll(eff.Zip(failWith("x"), right), 0)
	require.True(t, result.IsFailure())
	require.False(t, ran)
}

func TestWhenUnless(t *testing.T) {
	log, _ := eff.RunLog(eff.When(true, logw("on")), 0)
	require.Equal(t, []string{"on"}, log)

	log, _ = eff.RunLog(eff.When(false, logw("on")), 0)
	require.Empty(t, log)

	log, _ = eff.RunLog(eff.Unless(false, logw("on")), 0)
	require.Equal(t, []string{"on"}, log)
}

func TestRepeatN(t *testing.T) {
	// Each execution increments the state; n=4 means five executions.
	step := modify(func(s int) (int, int) { return s + 1, s + 1 })
	s, v := eff.Run(eff.RepeatN(step, 4), 0)
	require.Equal(t, 5, s)
	require.Equal(t, 5, v)
}

func TestForEachCollectsInOrder(t *testing.T) {
	m := eff.ForEach([]int{1, 2, 3}, func(x int) testEffect {
		return modify(func(s int) (int, int) { return s + x, x * 10 })
	})
	_, result := eff.RunAll(m, 0)
	pair, ok := result.Success()
	require.True(t, ok)
	require.Equal(t, 6, pair.First)
	if diff := cmp.Diff([]int{10, 20, 30}, pair.Second); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}
}

func TestForEachShortCircuitsOnFailure(t *testing.T) {
	seen := []int{}
	m := eff.ForEach([]int{1, 2, 3}, func(x int) testEffect {
		seen = append(seen, x)
		if x == 2 {
			return failWith("stop")
		}
		return succeed(x)
	})
	_, result := eff.RunAll(m, 0)
	require.True(t, result.IsFailure())
	require.Equal(t, []int{1, 2}, seen)
}

func TestForEachRerunsFreshAccumulator(t *testing.T) {
	m := eff.ForEach([]int{1, 2}, func(x int) testEffect { return succeed(x) })
	first := eff.RunValue(m, 0)
	second := eff.RunValue(m, 0)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("reruns differ (-first +second):\n%s", diff)
	}
}

func TestCollectAll(t *testing.T) {
	ms := []testEffect{succeed(1), succeed(2), succeed(3)}
	v := eff.RunValue(eff.CollectAll(ms), 0)
	if diff := cmp.Diff([]int{1, 2, 3}, v); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}
}

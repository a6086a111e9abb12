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

func acquireRes(name string) eff.Effect[string, int, struct{}, string, string] {
	return eff.ZipRight(logw("acquire "+name), eff.Succeed[string, int, struct{}, string](name))
}

func releaseRes(name string) unitEffect {
	return logw("release " + name)
}

func TestBracketReleasesOnSuccess(t *testing.T) {
	m := eff.Bracket(acquireRes("db"), releaseRes, func(res string) testEffect {
		return eff.ZipRight(logw("use "+res), succeed(1))
	})

	log, result := runAll(m, 0)
	pair, ok := result.Success()
	require.True(t, ok)
	require.Equal(t, 1, pair.Second)
	if diff := cmp.Diff([]string{"acquire db", "use db", "release db"}, log); diff != "" {
		t.Fatalf("log (-want +got):\n%s", diff)
	}
}

func TestBracketReleasesOnFailure(t *testing.T) {
	m := eff.Bracket(acquireRes("db"), releaseRes, func(res string) testEffect {
		return eff.ZipRight(logw("use "+res), failWith("x"))
	})

	log, result := runAll(m, 0)
	cause, ok := result.Failure()
	require.True(t, ok)
	require.Equal(t, "x", cause.First())
	if diff := cmp.Diff([]string{"acquire db", "use db", "release db"}, log); diff != "" {
		t.Fatalf("log (-want +got):\n%s", diff)
	}
}

func TestBracketFailingReleaseTakesPrecedence(t *testing.T) {
	// A release that fails on the failure path replaces the use cause;
	// the re-raise of the original never runs.
	failingRelease := func(name string) unitEffect {
		return eff.ZipRight(logw("release "+name), eff.Fail[string, int, struct{}, struct{}]("release failed"))
	}
	m := eff.Bracket(acquireRes("db"), failingRelease, func(res string) testEffect {
		return eff.ZipRight(logw("use "+res), failWith("use failed"))
	})

	log, result := runAll(m, 0)
	cause, ok := result.Failure()
	require.True(t, ok)
	require.True(t, eff.CauseEqual(eff.Single("release failed"), cause))
	if diff := cmp.Diff([]string{"acquire db", "use db", "release db"}, log); diff != "" {
		t.Fatalf("log (-want +got):\n%s", diff)
	}
}

func TestOnErrorRunsCleanupOnlyOnFailure(t *testing.T) {
	cleanup := func(eff.Cause[string]) unitEffect { return logw("cleanup") }

	log, result := runAll(eff.OnError(failWith("x"), cleanup), 0)
	cause, ok := result.Failure()
	require.True(t, ok)
	require.Equal(t, "x", cause.First())
	if diff := cmp.Diff([]string{"cleanup"}, log); diff != "" {
		t.Fatalf("log (-want +got):\n%s", diff)
	}

	log, result = runAll(eff.OnError(succeed(1), cleanup), 0)
	require.True(t, result.IsSuccess())
	require.Empty(t, log)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"code.hybscloud.com/eff"
)

// Shared test vocabulary. Most tests compose effects over a string log,
// an int state, an empty environment, and string errors; the aliases
// and constructors below keep compositions readable.

type testEffect = eff.Effect[string, int, struct{}, string, int]

type unitEffect = eff.Effect[string, int, struct{}, string, struct{}]

func succeed(a int) testEffect {
	return eff.Succeed[string, int, struct{}, string](a)
}

func failWith(e string) testEffect {
	return eff.Fail[string, int, struct{}, int](e)
}

func haltWith(c eff.Cause[string]) testEffect {
	return eff.FailCause[string, int, struct{}, int](c)
}

func logw(w string) unitEffect {
	return eff.Log[int, struct{}, string](w)
}

func modify(f func(int) (int, int)) testEffect {
	return eff.Modify[string, struct{}, string](f)
}

func getState() testEffect {
	return eff.Get[string, struct{}, string, int]()
}

func setState(s int) unitEffect {
	return eff.Set[string, struct{}, string](s)
}

func foldCause(m testEffect, onFailure func(eff.Cause[string]) testEffect, onSuccess func(int) testEffect) testEffect {
	return eff.FoldCauseM(m, onFailure, onSuccess)
}

// runAll projects the general run for the shared vocabulary.
func runAll(m testEffect, initial int) ([]string, eff.Either[eff.Cause[string], eff.Pair[int, int]]) {
	return eff.RunAll(m, initial)
}

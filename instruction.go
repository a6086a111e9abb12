// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Erased represents a type-erased value in the instruction tree.
// Node payloads and interpreter slots use Erased so that heterogeneous
// channel types flow through a homogeneous evaluation loop. Concrete
// types are recovered via type assertions at the constructor and run
// boundaries.
type Erased = any

// instrTag identifies an instruction variant. The interpreter dispatches
// on it with a dense switch; the ordering is load-bearing only in that
// it must stay dense.
type instrTag uint8

const (
	tagFlatMap instrTag = iota
	tagSucceed
	tagFail
	tagFold
	tagAccess
	tagProvide
	tagModify
	tagLog
	tagFlag
)

// FlagType identifies a dynamically-scoped interpreter flag.
// The set is open for extension; ClearLogOnError is the only flag the
// interpreter currently defines.
type FlagType uint8

const (
	// FlagClearLogOnError controls whether log entries produced inside a
	// failing Fold scope are discarded at the scope boundary. Defaults to
	// false when no enclosing Flag instruction has set it.
	FlagClearLogOnError FlagType = iota
)

// instruction is one node of the immutable computation tree. A single
// struct covers all nine variants; tag selects which payload fields are
// meaningful. Nodes are never mutated after construction and may be
// shared between computations and between runs.
type instruction struct {
	tag instrTag

	// value holds the Succeed value, the Provide environment, or the Log entry.
	value Erased

	// cause holds the Fail payload: an opaque Cause[E] value.
	cause Erased

	// child is the sub-tree of FlatMap, Fold, Provide, and Flag.
	child *instruction

	// k is the FlatMap continuation or the AccessM function.
	k func(Erased) *instruction

	// onFailure and onSuccess are the Fold handlers.
	onFailure func(Erased) *instruction
	onSuccess func(Erased) *instruction

	// modify is the Modify transition.
	modify func(Erased) (Erased, Erased)

	// flag and flagOn are the Flag payload.
	flag   FlagType
	flagOn bool
}

// unitValue is the value produced by instructions whose result carries
// no information (Log, Set, Update).
var unitValue Erased = struct{}{}

func succeedNode(v Erased) *instruction {
	return &instruction{tag: tagSucceed, value: v}
}

func failNode(cause Erased) *instruction {
	return &instruction{tag: tagFail, cause: cause}
}

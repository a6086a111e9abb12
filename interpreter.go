// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// The machine is an explicit-stack interpreter over the instruction
// tree. It processes nodes iteratively with a dense switch on the
// instruction tag, so host stack usage is O(1) in tree depth; the only
// recursive dynamic is growth of the continuation stack.
//
// Four stacks run in parallel:
//
//   - conts: continuations awaiting a success value. An entry is either
//     a plain continuation closure or a fold record; the error unwind
//     distinguishes them with a nil check.
//   - envs: environments installed by Provide. Access peeks the top.
//   - logs: log builders. The bottom builder accumulates the final log
//     and is never popped; every fold record pushes one builder at
//     entry and pops exactly one at resolution.
//   - flags: ClearLogOnError values pushed by Flag, false when empty.

// foldKind discriminates the three producers of fold records. Provide
// and Flag enter the continuation stack as bookkeeping folds so that
// their env/flag pushes are popped exactly once on both the success and
// the failure exit.
type foldKind uint8

const (
	foldUser foldKind = iota
	foldProvide
	foldFlag
)

// foldRecord is the continuation-stack entry for an active fold scope.
// savedState is restored on the failure exit only; the success exit
// retains the child's output state. Records are pooled (pool.go) and
// single-use within a run.
type foldRecord struct {
	kind       foldKind
	onFailure  func(Erased) *instruction
	onSuccess  func(Erased) *instruction
	savedState Erased
}

// contEntry is one continuation-stack slot: a plain continuation when
// fold is nil, a fold record otherwise.
type contEntry struct {
	apply func(Erased) *instruction
	fold  *foldRecord
}

// machine holds the per-run interpreter state. A machine is owned by a
// single run and must not be driven from more than one goroutine.
type machine struct {
	state  Erased
	value  Erased
	failed bool

	conts []contEntry
	envs  []Erased
	logs  [][]Erased
	flags []bool
}

// evaluate folds the instruction tree rooted at start into the final
// (log, state, value, failed) quadruple.
func evaluate(start *instruction, initial Erased) (log []Erased, state Erased, value Erased, failed bool) {
	m := &machine{
		state: initial,
		conts: make([]contEntry, 0, 16),
		logs:  make([][]Erased, 1, 8),
	}
	cur := start
	for cur != nil {
		switch cur.tag {
		case tagFlatMap:
			child := cur.child
			// Fast path: apply the continuation inline when the child
			// produces its value immediately. Keeps the continuation
			// stack flat for chains whose continuations each return a
			// FlatMap over Succeed/Modify.
			switch child.tag {
			case tagSucceed:
				cur = cur.k(child.value)
			case tagModify:
				s2, a := child.modify(m.state)
				m.state = s2
				cur = cur.k(a)
			default:
				m.conts = append(m.conts, contEntry{apply: cur.k})
				cur = child
			}
		case tagSucceed:
			cur = m.continueWith(cur.value)
		case tagFail:
			cur = m.unwind(cur.cause)
		case tagFold:
			m.pushFold(foldUser, cur.onFailure, cur.onSuccess)
			cur = cur.child
		case tagAccess:
			cur = cur.k(m.peekEnv())
		case tagProvide:
			m.envs = append(m.envs, cur.value)
			m.pushFold(foldProvide, nil, nil)
			cur = cur.child
		case tagModify:
			s2, a := cur.modify(m.state)
			m.state = s2
			cur = m.continueWith(a)
		case tagLog:
			top := len(m.logs) - 1
			m.logs[top] = append(m.logs[top], cur.value)
			cur = m.continueWith(unitValue)
		case tagFlag:
			switch cur.flag {
			case FlagClearLogOnError:
				m.flags = append(m.flags, cur.flagOn)
			default:
				panic("eff: unknown interpreter flag")
			}
			m.pushFold(foldFlag, nil, nil)
			cur = cur.child
		default:
			panic("eff: unknown instruction tag")
		}
	}
	return m.logs[0], m.state, m.value, m.failed
}

// pushFold pairs a continuation-stack fold record with a fresh log
// builder. The pairing is undone exactly once per record, in
// continueWith or unwind.
func (m *machine) pushFold(kind foldKind, onFailure, onSuccess func(Erased) *instruction) {
	rec := acquireFoldRecord()
	rec.kind = kind
	rec.onFailure = onFailure
	rec.onSuccess = onSuccess
	rec.savedState = m.state
	m.logs = append(m.logs, nil)
	m.conts = append(m.conts, contEntry{fold: rec})
}

// continueWith feeds a success value to the next continuation.
// Bookkeeping folds (Provide, Flag) resolve transparently: they pop
// their env/flag entry, merge their log scope, and keep popping.
// Returns nil when the continuation stack is exhausted, terminating the
// run with the value.
func (m *machine) continueWith(v Erased) *instruction {
	for {
		n := len(m.conts)
		if n == 0 {
			m.value = v
			return nil
		}
		entry := m.conts[n-1]
		m.conts = m.conts[:n-1]
		if entry.fold == nil {
			return entry.apply(v)
		}
		rec := entry.fold
		m.mergeScope(false)
		switch rec.kind {
		case foldUser:
			next := rec.onSuccess(v)
			releaseFoldRecord(rec)
			return next
		case foldProvide:
			m.envs = m.envs[:len(m.envs)-1]
		case foldFlag:
			m.flags = m.flags[:len(m.flags)-1]
		}
		releaseFoldRecord(rec)
	}
}

// unwind pops the continuation stack after a failure, seeking the
// nearest enclosing fold. Plain continuations are skipped silently;
// they own no log builders. Bookkeeping folds pop their env/flag entry
// and keep unwinding with the same cause. Returns nil when no fold is
// found, terminating the run in the failed state.
func (m *machine) unwind(cause Erased) *instruction {
	for {
		n := len(m.conts)
		if n == 0 {
			m.failed = true
			m.value = cause
			return nil
		}
		entry := m.conts[n-1]
		m.conts = m.conts[:n-1]
		if entry.fold == nil {
			continue
		}
		rec := entry.fold
		m.mergeScope(true)
		m.state = rec.savedState
		switch rec.kind {
		case foldUser:
			next := rec.onFailure(cause)
			releaseFoldRecord(rec)
			return next
		case foldProvide:
			m.envs = m.envs[:len(m.envs)-1]
		case foldFlag:
			m.flags = m.flags[:len(m.flags)-1]
		}
		releaseFoldRecord(rec)
	}
}

// mergeScope pops the top log builder and merges it into its parent.
// On the failure path the builder is discarded instead when the
// ClearLogOnError flag is active. This is the only place log entries
// are ever dropped.
func (m *machine) mergeScope(failurePath bool) {
	top := len(m.logs) - 1
	inner := m.logs[top]
	m.logs = m.logs[:top]
	if failurePath && m.clearLogOnError() {
		return
	}
	if len(inner) > 0 {
		m.logs[top-1] = append(m.logs[top-1], inner...)
	}
}

// clearLogOnError reads the top of the flag stack, defaulting to false.
func (m *machine) clearLogOnError() bool {
	if n := len(m.flags); n > 0 {
		return m.flags[n-1]
	}
	return false
}

// peekEnv returns the innermost provided environment.
func (m *machine) peekEnv() Erased {
	n := len(m.envs)
	if n == 0 {
		panic("eff: access without a provided environment")
	}
	return m.envs[n-1]
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync"

// Pool for fold records on the interpreter's continuation stack.
// A record is acquired at fold entry and released at its resolution,
// zeroing all fields. Records are single-use within a run: once a
// resolution handler has been taken from the record, the record must
// not be touched again.

var foldRecordPool = sync.Pool{New: func() any { return new(foldRecord) }}

func acquireFoldRecord() *foldRecord {
	return foldRecordPool.Get().(*foldRecord)
}

// releaseFoldRecord zeroes and returns rec to the pool.
func releaseFoldRecord(rec *foldRecord) {
	rec.kind = 0
	rec.onFailure = nil
	rec.onSuccess = nil
	rec.savedState = nil
	foldRecordPool.Put(rec)
}

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

import (
	"slices"
	"sync"
)

// Recorder forwards queries to another Querier and keeps every distinct result so
// the session can be saved as a Snapshot and replayed elsewhere.
type Recorder struct {
	q      Querier
	mu     sync.Mutex
	leaves map[Key]Registers
	xcr    map[uint32]uint64
}

func NewRecorder(q Querier) *Recorder {
	return &Recorder{
		q:      q,
		leaves: make(map[Key]Registers),
		xcr:    make(map[uint32]uint64),
	}
}

func (r *Recorder) CPUID(leaf, subleaf uint32) Registers {
	regs := r.q.CPUID(leaf, subleaf)
	r.mu.Lock()
	r.leaves[Key{leaf, subleaf}] = regs
	r.mu.Unlock()
	return regs
}

func (r *Recorder) XGETBV(index uint32) uint64 {
	v := r.q.XGETBV(index)
	r.mu.Lock()
	r.xcr[index] = v
	r.mu.Unlock()
	return v
}

// Supported reports whether the wrapped querier can execute queries. Queriers
// without a Supported method always can.
func (r *Recorder) Supported() bool {
	if s, ok := r.q.(interface{ Supported() bool }); ok {
		return s.Supported()
	}
	return true
}

// Snapshot returns everything recorded so far.
func (r *Recorder) Snapshot(comment string) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Snapshot{Comment: comment, Leaves: sortLeaves(r.leaves)}
	indexes := make([]uint32, 0, len(r.xcr))
	for i := range r.xcr {
		indexes = append(indexes, i)
	}
	slices.Sort(indexes)
	for _, i := range indexes {
		s.XCR = append(s.XCR, SnapshotXCR{Index: hex32(i), Value: hex64(r.xcr[i])})
	}
	return s
}

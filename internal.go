// Copyright 2024 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package deferred

import (
	"sync"

	"github.com/asmsh/deferred/internal/status"
)

// record is the settlement record: the single source of truth for a deferred
// value's state, its eventual value or failure, and the continuations queued
// while it's still pending.
//
// One record is allocated per producing operation, and shared, never copied,
// by every handle and every closure derived from it. It's the only
// shared-mutable state in the package.
type record[T any] struct {
	// mu guards the state transition and the two queues.
	// it's never held while a continuation runs.
	mu sync.Mutex

	// the settlement state.
	// stored only while holding mu; loaded freely.
	state status.Cell

	// value holds the result of the record, meaningful only when the state
	// is Fulfilled.
	// written once, before the state cell publishes Fulfilled.
	value T

	// failure holds the error of the record, meaningful only when the state
	// is Rejected.
	// written once, before the state cell publishes Rejected.
	failure Failure

	// fulfillQ and failQ hold the continuations attached while the record
	// was pending, in attachment order.
	// both are drained at most once, at settlement, then never touched again.
	fulfillQ []func(T)
	failQ    []func(Failure)
}

// settleFulfilled transitions the record to Fulfilled with val, then invokes
// every queued fulfillment continuation with val, in attachment order, on the
// caller's stack. It's a no-op if the record is already settled.
func (r *record[T]) settleFulfilled(val T) {
	r.mu.Lock()
	if !status.IsPending(r.state.Load()) {
		r.mu.Unlock()
		return
	}
	r.value = val
	r.state.Store(status.Fulfilled)
	q := r.fulfillQ
	r.fulfillQ, r.failQ = nil, nil
	r.mu.Unlock()

	// drain outside the lock, so continuations can reenter the record.
	for _, cont := range q {
		cont(val)
	}
}

// settleRejected is the failure counterpart of settleFulfilled, draining the
// failure queue with f.
func (r *record[T]) settleRejected(f Failure) {
	r.mu.Lock()
	if !status.IsPending(r.state.Load()) {
		r.mu.Unlock()
		return
	}
	r.failure = f
	r.state.Store(status.Rejected)
	q := r.failQ
	r.fulfillQ, r.failQ = nil, nil
	r.mu.Unlock()

	for _, cont := range q {
		cont(f)
	}
}

// subscribe attaches the two continuations to the record.
// While the record is pending both are queued, to fire at settlement.
// On a settled record the matching continuation is invoked immediately, on
// this caller's stack, and the other one is dropped.
// Either continuation may be nil.
func (r *record[T]) subscribe(onFulfilled func(T), onRejected func(Failure)) {
	r.mu.Lock()
	s := r.state.Load()
	if status.IsPending(s) {
		if onFulfilled != nil {
			r.fulfillQ = append(r.fulfillQ, onFulfilled)
		}
		if onRejected != nil {
			r.failQ = append(r.failQ, onRejected)
		}
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	switch {
	case status.IsFulfilled(s):
		if onFulfilled != nil {
			onFulfilled(r.value)
		}
	case status.IsRejected(s):
		if onRejected != nil {
			onRejected(r.failure)
		}
	}
}

// adopt settles r with the eventual outcome of the src record (flattening).
// The caller must have ruled out src being r itself.
func (r *record[T]) adopt(src *record[T]) {
	src.subscribe(r.settleFulfilled, r.settleRejected)
}

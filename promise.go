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

// Promise is the user-facing handle of a deferred value of type T.
//
// It's a thin value type: copying it copies a shared reference to the same
// settlement record, not the record itself. The zero value holds no record
// and represents "no such promise": it reads as Pending, its settlement
// calls are no-ops, and deriving from it yields a rejected promise.
type Promise[T any] struct {
	// rec is the shared settlement record, or nil for the zero value.
	rec *record[T]

	// resolveFn and rejectFn are the settlement functions bound at
	// construction time. They close over the record, never over this handle,
	// so external code may retain and call them long after every handle to
	// the record is gone.
	resolveFn func(T)
	rejectFn  func(Failure)
}

// New constructs a Promise by invoking the producer synchronously with a
// resolve and a reject function bound to a freshly allocated settlement
// record.
//
// The producer may settle the record immediately, retain the two functions
// and settle later, or never settle at all. A fault raised by the producer
// is caught and delivered through the bound reject function, converted per
// the Failure rules; if the producer already settled the record before
// faulting, that delivery is a no-op (first settlement wins).
func New[T any](producer func(resolve func(T), reject func(Failure))) Promise[T] {
	r := &record[T]{}
	p := Promise[T]{
		rec:       r,
		resolveFn: r.settleFulfilled,
		rejectFn:  r.settleRejected,
	}
	runProducer(producer, p.resolveFn, p.rejectFn)
	return p
}

func runProducer[T any](
	producer func(resolve func(T), reject func(Failure)),
	resolve func(T),
	reject func(Failure),
) {
	defer func() {
		if v := recover(); v != nil {
			reject(failureFromPanic(v))
		}
	}()
	producer(resolve, reject)
}

// Resolve settles the promise's record as Fulfilled with val, invoking every
// queued fulfillment continuation on this call's stack before returning.
// It's a no-op on an already-settled record, and on the zero Promise.
func (p Promise[T]) Resolve(val T) {
	if p.resolveFn != nil {
		p.resolveFn(val)
	}
}

// Reject settles the promise's record as Rejected with f, invoking every
// queued failure continuation on this call's stack before returning.
// It's a no-op on an already-settled record, and on the zero Promise.
func (p Promise[T]) Reject(f Failure) {
	if p.rejectFn != nil {
		p.rejectFn(f)
	}
}

// RejectMsg is Reject with a Failure built from message and code.
// Pass code 0 when no specific code applies.
func (p Promise[T]) RejectMsg(message string, code int) {
	p.Reject(NewFailure(message, code))
}

// ResolveWith resolves the promise with another promise of the same type,
// by flattening: instead of storing inner as a payload, the record adopts
// inner's eventual outcome, fulfilling or rejecting when inner does.
//
// If inner is backed by the very same settlement record, the promise is
// rejected with a chaining-cycle failure instead, as adopting it would
// self-reference forever. If inner holds no record, nothing is attached and
// the promise stays pending.
func (p Promise[T]) ResolveWith(inner Promise[T]) {
	r := p.rec
	if r == nil || inner.rec == nil {
		return
	}
	if inner.rec == r {
		r.settleRejected(chainingCycleFailure())
		return
	}
	r.adopt(inner.rec)
}

// State returns the current settlement state.
// The zero Promise reads as Pending.
func (p Promise[T]) State() State {
	if p.rec == nil {
		return Pending
	}
	return stateOf(p.rec.state.Load())
}

// IsPending returns true while the promise is not settled.
func (p Promise[T]) IsPending() bool {
	return p.State() == Pending
}

// IsFulfilled returns true once the promise settled successfully.
func (p Promise[T]) IsFulfilled() bool {
	return p.State() == Fulfilled
}

// IsRejected returns true once the promise settled with a failure.
func (p Promise[T]) IsRejected() bool {
	return p.State() == Rejected
}

// Value returns the stored payload.
// It's defined only when IsFulfilled is true; calling it in any other state
// is a contract violation by the caller, and returns the zero value of T.
func (p Promise[T]) Value() T {
	if p.rec == nil {
		var zero T
		return zero
	}
	return p.rec.value
}

// Error returns the stored failure.
// It's defined only when IsRejected is true; calling it in any other state
// is a contract violation by the caller, and returns a zero Failure.
func (p Promise[T]) Error() Failure {
	if p.rec == nil {
		return Failure{}
	}
	return p.rec.failure
}

// CatchError appends onRejected to this promise's own failure queue and
// triggers an immediate drain attempt: on an already-rejected promise the
// handler runs right away, on a fulfilled one it never runs, and on a
// pending one it's queued.
//
// Unlike Then, CatchError creates no derived promise: it returns the same
// handle, so calls chain syntactically without adding a settlement stage.
func (p Promise[T]) CatchError(onRejected func(Failure)) Promise[T] {
	if p.rec == nil || onRejected == nil {
		return p
	}
	p.rec.subscribe(nil, onRejected)
	return p
}

// Resolved returns an already-fulfilled Promise carrying val, produced via
// the standard producer path.
func Resolved[T any](val T) Promise[T] {
	return New(func(resolve func(T), _ func(Failure)) {
		resolve(val)
	})
}

// NewRejected returns an already-rejected Promise carrying f, produced via
// the standard producer path.
func NewRejected[T any](f Failure) Promise[T] {
	return New(func(_ func(T), reject func(Failure)) {
		reject(f)
	})
}

// RejectedMsg is NewRejected with a Failure built from message and code.
func RejectedMsg[T any](message string, code int) Promise[T] {
	return NewRejected[T](NewFailure(message, code))
}

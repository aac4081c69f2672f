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

// Void is the payload type of a no-payload promise.
// It's the only value type for which the Empty result fulfills a promise.
type Void struct{}

// VoidPromise is the no-payload specialization of Promise: the same
// settlement contract with zero-argument resolve and fulfillment handlers.
//
// It's backed by a Promise[Void], so it shares the package's single
// settlement engine; only the surface differs. The zero value holds no
// record and behaves like the zero Promise.
type VoidPromise struct {
	p Promise[Void]
}

// NewVoid constructs a VoidPromise by invoking the producer synchronously,
// following the same rules as New, with a zero-argument resolve function.
func NewVoid(producer func(resolve func(), reject func(Failure))) VoidPromise {
	inner := New(func(resolve func(Void), reject func(Failure)) {
		producer(func() { resolve(Void{}) }, reject)
	})
	return VoidPromise{p: inner}
}

// AsVoid gives a Promise[Void] the zero-argument surface.
// It's the bridge back from a Then chain whose handler produced no payload.
func AsVoid(p Promise[Void]) VoidPromise {
	return VoidPromise{p: p}
}

// Resolve settles the promise as Fulfilled, with no payload.
// It's a no-op on an already-settled record, and on the zero VoidPromise.
func (vp VoidPromise) Resolve() {
	vp.p.Resolve(Void{})
}

// Reject settles the promise as Rejected with f.
// It's a no-op on an already-settled record, and on the zero VoidPromise.
func (vp VoidPromise) Reject(f Failure) {
	vp.p.Reject(f)
}

// RejectMsg is Reject with a Failure built from message and code.
func (vp VoidPromise) RejectMsg(message string, code int) {
	vp.p.RejectMsg(message, code)
}

// State returns the current settlement state.
func (vp VoidPromise) State() State {
	return vp.p.State()
}

// IsPending returns true while the promise is not settled.
func (vp VoidPromise) IsPending() bool {
	return vp.p.IsPending()
}

// IsFulfilled returns true once the promise settled successfully.
func (vp VoidPromise) IsFulfilled() bool {
	return vp.p.IsFulfilled()
}

// IsRejected returns true once the promise settled with a failure.
func (vp VoidPromise) IsRejected() bool {
	return vp.p.IsRejected()
}

// Error returns the stored failure.
// It's defined only when IsRejected is true, like Promise.Error.
func (vp VoidPromise) Error() Failure {
	return vp.p.Error()
}

// CatchError appends onRejected to this promise's own failure queue and
// returns the same handle, with the exact semantics of Promise.CatchError.
func (vp VoidPromise) CatchError(onRejected func(Failure)) VoidPromise {
	vp.p.CatchError(onRejected)
	return vp
}

// settle makes VoidPromise a Result[Void], so a handler can return one to be
// flattened into its derived promise.
func (vp VoidPromise) settle(resolve func(Void), reject func(Failure), src any) {
	vp.p.settle(resolve, reject, src)
}

// ThenVoid is Then for a no-payload source: the fulfillment handler takes no
// arguments.
func ThenVoid[U any](vp VoidPromise, onFulfilled func() Result[U]) Promise[U] {
	return ThenCatchVoid(vp, onFulfilled, nil)
}

// ThenCatchVoid is ThenCatch for a no-payload source.
func ThenCatchVoid[U any](
	vp VoidPromise,
	onFulfilled func() Result[U],
	onRejected func(Failure) Result[U],
) Promise[U] {
	if onFulfilled == nil {
		panic(nilCallbackPanicMsg)
	}
	return ThenCatch(vp.p, func(Void) Result[U] { return onFulfilled() }, onRejected)
}

// ResolvedVoid returns an already-fulfilled VoidPromise, produced via the
// standard producer path.
func ResolvedVoid() VoidPromise {
	return NewVoid(func(resolve func(), _ func(Failure)) {
		resolve()
	})
}

// RejectedVoid returns an already-rejected VoidPromise carrying f, produced
// via the standard producer path.
func RejectedVoid(f Failure) VoidPromise {
	return NewVoid(func(_ func(), reject func(Failure)) {
		reject(f)
	})
}

// RejectedVoidMsg is RejectedVoid with a Failure built from message and code.
func RejectedVoidMsg(message string, code int) VoidPromise {
	return RejectedVoid(NewFailure(message, code))
}

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

// panic messages
const nilCallbackPanicMsg = "deferred: the provided callback is nil"

// Then returns a new Promise of the handler's result type, settled from this
// promise's outcome: when p fulfills, onFulfilled runs with the payload and
// its Result settles the derived promise; when p rejects, the failure passes
// through to the derived promise unchanged.
//
// If p is already settled the handler path runs immediately, on this call's
// stack; otherwise it's queued on p's record and fires at settlement.
//
// It's a package-level function, not a method, because the derived value
// type U is introduced here.
func Then[T, U any](p Promise[T], onFulfilled func(T) Result[U]) Promise[U] {
	return ThenCatch(p, onFulfilled, nil)
}

// ThenCatch is Then with a rejection handler: when p rejects, onRejected
// runs with the failure, and its Result settles the derived promise under
// the same classification rules as the fulfillment path.
// A nil onRejected is the absent-handler marker, making ThenCatch behave
// exactly like Then. A nil onFulfilled panics.
//
// A fault raised by either handler, or during result classification, is
// caught and converted to a Failure that rejects the derived promise: an
// error panic value keeps its message with code -1, anything else becomes
// the unknown-fault failure.
func ThenCatch[T, U any](
	p Promise[T],
	onFulfilled func(T) Result[U],
	onRejected func(Failure) Result[U],
) Promise[U] {
	if onFulfilled == nil {
		panic(nilCallbackPanicMsg)
	}
	if p.rec == nil {
		return NewRejected[U](promiseNoStateFailure())
	}

	src := p.rec
	return New(func(resolve func(U), reject func(Failure)) {
		handleFulfilled := func(val T) {
			defer recoverInto(reject)
			settleResult(onFulfilled(val), resolve, reject, src)
		}
		handleRejected := func(f Failure) {
			if onRejected == nil {
				// pass-through: failures propagate past Then calls that
				// only handle fulfillment.
				reject(f)
				return
			}
			defer recoverInto(reject)
			settleResult(onRejected(f), resolve, reject, src)
		}
		src.subscribe(handleFulfilled, handleRejected)
	})
}

// recoverInto converts a fault raised on the handler path into a rejection
// of the derived record. It must be called directly by a defer statement.
func recoverInto(reject func(Failure)) {
	if v := recover(); v != nil {
		reject(failureFromPanic(v))
	}
}

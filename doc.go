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

// Package deferred provides a synchronous, JavaScript-style deferred-value
// primitive.
//
// A Promise is a container for a value or a Failure that starts out Pending
// and is settled exactly once, to either Fulfilled or Rejected. Any number of
// continuations can be attached to it, before or after settlement, and each
// Then call produces a new, derived Promise carrying the continuation's
// result.
//
// Unlike its asynchronous siblings, this package has no scheduler, no
// goroutines, no timers, and no blocking operations. Every continuation runs
// synchronously, inline, on whichever call stack performs the settlement, or,
// when the source is already settled, inline on the stack that attaches it.
// Side effects made inside a continuation are visible to the code immediately
// following the settlement call that triggered it.
//
// # States
//
// A Promise is in exactly one of three states, at any time:
// Pending: not settled yet; attached continuations are queued.
// Fulfilled: settled with a value; queued fulfillment continuations have run.
// Rejected: settled with a Failure; queued failure continuations have run.
//
// The state is monotonic. The first settlement wins, and later settlement
// attempts are silently discarded.
//
// # Construction
//
// New mirrors the JavaScript constructor: it calls the provided producer
// synchronously with a resolve and a reject function, both bound to a freshly
// allocated settlement record. The producer may settle immediately, retain
// the two functions and settle later from other code, or never settle at all,
// in which case the Promise stays Pending forever, which is permitted.
//
// The resolve and reject functions close over the shared settlement record,
// never over the Promise handle itself, so they stay valid after every handle
// derived from that record has gone out of scope.
//
// # Continuations
//
// Then and ThenCatch return a derived Promise of the handler's result type.
// A handler communicates its result through a Result value:
// Val for a plain value, Empty for no payload, Err for a rejection, or a
// Promise itself, which is flattened into the derived Promise by adopting its
// eventual outcome. Returning a Promise backed by the same settlement record
// as the source is detected and rejected as a chaining cycle, instead of
// recursing forever.
//
// CatchError is deliberately different from Then: it appends the handler to
// the same record's failure queue and returns the same handle, creating no
// derived settlement stage.
//
// # Concurrency
//
// Settlement and queue mutation are guarded per record, so racing settlement
// attempts from multiple goroutines elect exactly one winner. Continuations
// still run synchronously, on the winning settler's stack. The package
// provides no way to wait for a Pending promise; bridging to goroutines is
// the caller's concern.
package deferred

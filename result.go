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

import "fmt"

// Result is the value a Then handler returns to describe the outcome of the
// derived promise. It's one of four kinds, chosen when the handler is
// written:
//
//   - Val: a plain value, which fulfills the derived promise directly.
//   - Empty (or a nil Result): no payload; legal only when the derived
//     promise's type is Void, otherwise the derived promise is rejected with
//     an invalid-return-type failure.
//   - Err: a failure, which rejects the derived promise.
//   - a Promise (or VoidPromise) of the same value type: a nested deferred
//     value, flattened into the derived promise by adopting its eventual
//     outcome, after the chaining-cycle check against the source record.
type Result[T any] interface {
	// settle delivers this result into a derived record through its bound
	// resolve and reject functions. src is the identity of the source
	// record, used for chaining-cycle detection.
	settle(resolve func(T), reject func(Failure), src any)
}

// Val returns a Result carrying the plain value val.
func Val[T any](val T) Result[T] {
	return valResult[T]{val: val}
}

// Empty returns the no-payload Result.
func Empty[T any]() Result[T] {
	return emptyResult[T]{}
}

// Err returns a Result carrying the failure f.
func Err[T any](f Failure) Result[T] {
	return errResult[T]{failure: f}
}

type valResult[T any] struct{ val T }
type emptyResult[T any] struct{}
type errResult[T any] struct{ failure Failure }

func (r valResult[T]) settle(resolve func(T), _ func(Failure), _ any) {
	resolve(r.val)
}

func (r emptyResult[T]) settle(resolve func(T), reject func(Failure), _ any) {
	// a no-payload result can fulfill only a no-payload promise; a declared
	// result type mismatch is a hard error, not a silent coercion.
	var zero T
	if _, ok := any(zero).(Void); ok {
		resolve(zero)
		return
	}
	reject(invalidReturnFailure())
}

func (r errResult[T]) settle(_ func(T), reject func(Failure), _ any) {
	reject(r.failure)
}

// settle makes Promise itself a Result, so a handler can return a nested
// promise to be flattened into the derived one.
func (p Promise[T]) settle(resolve func(T), reject func(Failure), src any) {
	if p.rec == nil {
		// a promise with no record never settles, so neither will the
		// derived promise.
		return
	}
	if any(p.rec) == src {
		reject(chainingCycleFailure())
		return
	}
	p.rec.subscribe(resolve, reject)
}

// settleResult classifies and delivers a handler's result.
// A nil Result means the handler produced no payload.
func settleResult[T any](res Result[T], resolve func(T), reject func(Failure), src any) {
	if res == nil {
		res = emptyResult[T]{}
	}
	res.settle(resolve, reject, src)
}

func (r valResult[T]) String() string {
	return fmt.Sprintf("fulfilled: %v", r.val)
}
func (r emptyResult[T]) String() string {
	return "fulfilled: <empty>"
}
func (r errResult[T]) String() string {
	return fmt.Sprintf("rejected: %s", r.failure.Message)
}

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

// the messages of the failures produced by the package itself.
// the code of all of them is fixed at -1.
const (
	unknownFaultMsg   = "Unknown exception"
	chainingCycleMsg  = "Chaining cycle detected for promise"
	invalidReturnMsg  = "Invalid return type"
	promiseNoStateMsg = "Promise has no state"
)

// Failure is the settled-error value of a Rejected promise.
//
// It's plain data, copied by value along continuation chains: a human-readable
// message plus an integer code. The code defaults to 0 for caller-constructed
// failures; failures converted from a caught fault carry the code -1.
type Failure struct {
	Message string
	Code    int
}

// NewFailure returns a Failure carrying the provided message and code.
func NewFailure(message string, code int) Failure {
	return Failure{Message: message, Code: code}
}

// FailureFrom returns a Failure converted from a caught fault: the error's
// message is copied and the code is fixed at -1.
func FailureFrom(err error) Failure {
	return Failure{Message: err.Error(), Code: -1}
}

// UnknownFailure returns the failure used for faults that don't carry an
// error value.
func UnknownFailure() Failure {
	return Failure{Message: unknownFaultMsg, Code: -1}
}

// Error makes Failure usable as an ordinary Go error value.
func (f Failure) Error() string {
	return f.Message
}

func (f Failure) String() string {
	return fmt.Sprintf("%s (code %d)", f.Message, f.Code)
}

// failureFromPanic converts a recovered panic value to a Failure.
// A panic with an error value is the native-fault kind, and keeps its
// message; any other panic value maps to the unknown-fault failure.
func failureFromPanic(v any) Failure {
	if err, ok := v.(error); ok {
		return FailureFrom(err)
	}
	return UnknownFailure()
}

func chainingCycleFailure() Failure {
	return Failure{Message: chainingCycleMsg, Code: -1}
}

func invalidReturnFailure() Failure {
	return Failure{Message: invalidReturnMsg, Code: -1}
}

func promiseNoStateFailure() Failure {
	return Failure{Message: promiseNoStateMsg, Code: -1}
}

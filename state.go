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

import "github.com/asmsh/deferred/internal/status"

// State is the settlement state of a Promise.
type State int

const (
	// the order here matter, and must match the internal/status values.
	Pending State = iota
	Fulfilled
	Rejected
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		// only user-created State values may result in reaching this
		return "<unknown>"
	}
}

// stateOf translates the internal status value to the public State.
func stateOf(s uint32) State {
	switch {
	case status.IsFulfilled(s):
		return Fulfilled
	case status.IsRejected(s):
		return Rejected
	default:
		return Pending
	}
}

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

package status

import "sync/atomic"

var (
	load  = atomic.LoadUint32
	store = atomic.StoreUint32
)

// the settlement states, in transition order.
// the zero value is Pending, so a zero Cell is a pending cell.
const (
	Pending uint32 = iota
	Fulfilled
	Rejected
)

// Cell holds the settlement state of a single record.
// It's read atomically, and written atomically, under the owning record's
// lock, at most once, from Pending to either Fulfilled or Rejected.
type Cell struct {
	v uint32
}

// Load returns the current state of the cell.
func (c *Cell) Load() uint32 {
	return load(&c.v)
}

// Store publishes the state s.
// The caller must hold the owning record's lock, and must have verified that
// the cell is still Pending, otherwise the monotonic transition is broken.
func (c *Cell) Store(s uint32) {
	store(&c.v, s)
}

func IsPending(s uint32) bool {
	return s == Pending
}

func IsFulfilled(s uint32) bool {
	return s == Fulfilled
}

func IsRejected(s uint32) bool {
	return s == Rejected
}

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

// Package status implements the settlement state cell of the deferred module.
//
// The cell holds one of three values, Pending, Fulfilled, or Rejected, and is
// monotonic: once it leaves Pending it never changes again. The transition
// itself is decided under the owning record's lock; the cell only publishes
// it, so that state reads don't need the lock.
//
// The Store call uses a release store and Load uses an acquire load, which is
// what makes the record's payload and failure fields safe to read once Load
// observes a non-Pending value: the record writes those fields before storing
// the new state.
package status

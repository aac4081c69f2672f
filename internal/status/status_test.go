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

import "testing"

func TestCellZeroValue(t *testing.T) {
	var c Cell
	if s := c.Load(); !IsPending(s) {
		t.Fatalf("zero Cell Load() = %d, want: Pending", s)
	}
}

func TestCellStore(t *testing.T) {
	t.Run("fulfilled", func(t *testing.T) {
		var c Cell
		c.Store(Fulfilled)
		if s := c.Load(); !IsFulfilled(s) {
			t.Fatalf("Load() = %d, want: Fulfilled", s)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		var c Cell
		c.Store(Rejected)
		if s := c.Load(); !IsRejected(s) {
			t.Fatalf("Load() = %d, want: Rejected", s)
		}
	})
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		s                            uint32
		pending, fulfilled, rejected bool
	}{
		{Pending, true, false, false},
		{Fulfilled, false, true, false},
		{Rejected, false, false, true},
	}
	for _, tt := range tests {
		if got := IsPending(tt.s); got != tt.pending {
			t.Errorf("IsPending(%d) = %v, want: %v", tt.s, got, tt.pending)
		}
		if got := IsFulfilled(tt.s); got != tt.fulfilled {
			t.Errorf("IsFulfilled(%d) = %v, want: %v", tt.s, got, tt.fulfilled)
		}
		if got := IsRejected(tt.s); got != tt.rejected {
			t.Errorf("IsRejected(%d) = %v, want: %v", tt.s, got, tt.rejected)
		}
	}
}

func BenchmarkCell_Load(b *testing.B) {
	var c Cell
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Load()
	}
}

func BenchmarkCell_Load_Parallel(b *testing.B) {
	var c Cell
	c.Store(Fulfilled)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = c.Load()
		}
	})
}

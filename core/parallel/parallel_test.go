package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"
)

func TestParallelize(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{name: "zero items", items: 0},
		{name: "single item", items: 1},
		{name: "fewer items than cores", items: 3},
		{name: "many items", items: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited int64
			Parallelize(tt.items, func(start, end int) {
				atomic.AddInt64(&visited, int64(end-start))
			})
			if visited != int64(tt.items) {
				t.Errorf("visited %d items, want %d", visited, tt.items)
			}
		})
	}
}

func TestParallelizeCoversEveryIndexOnce(t *testing.T) {
	const items = 257
	seen := make([]int64, items)
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&seen[i], 1)
		}
	})
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("index %d visited %d times, want exactly once", i, n)
		}
	}
}

func TestParallelizeWithError(t *testing.T) {
	// The lowest-indexed failure wins, matching sequential behavior.
	err := ParallelizeWithError(10, func(i int) error {
		if i == 7 || i == 3 {
			return fmt.Errorf("item %d failed", i)
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "item 3 failed" {
		t.Errorf("got %q, want first-by-index failure", err)
	}

	if err := ParallelizeWithError(0, func(i int) error { return nil }); err != nil {
		t.Errorf("zero items should not error, got %v", err)
	}
}

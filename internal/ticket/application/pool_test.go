package application

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsTasks(t *testing.T) {
	pool, err := NewWorkerPool(3, 8)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}

	var ran atomic.Int64
	for i := 0; i < 20; i++ {
		pool.Execute(func() { ran.Add(1) })
	}
	pool.Shutdown()

	if got := ran.Load(); got != 20 {
		t.Fatalf("ran %d tasks, want 20", got)
	}
}

func TestWorkerPoolShutdownIdempotent(t *testing.T) {
	pool, err := NewWorkerPool(1, 0)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	pool.Shutdown()
	pool.Shutdown()
}

func TestNewWorkerPoolValidation(t *testing.T) {
	if _, err := NewWorkerPool(0, 4); err == nil {
		t.Fatalf("expected error for zero workers")
	}
	if _, err := NewWorkerPool(2, -1); err == nil {
		t.Fatalf("expected error for negative queue")
	}
}

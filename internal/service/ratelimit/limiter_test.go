package ratelimit

import "testing"

func TestAllowConsumesBurst(t *testing.T) {
	l := New(2, 0.0001)
	if !l.Allow() {
		t.Fatalf("first token should be allowed")
	}
	if !l.Allow() {
		t.Fatalf("second token should be allowed")
	}
	if l.Allow() {
		t.Fatalf("bucket should be empty")
	}
}

func TestAllowZeroCapacity(t *testing.T) {
	l := New(0, 0.0001)
	if l.Allow() {
		t.Fatalf("zero capacity should never allow")
	}
}

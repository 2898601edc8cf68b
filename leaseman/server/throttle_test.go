package server

import (
	"context"
	"testing"
	"time"
)

func TestRequestThrottle(t *testing.T) {
	rt, _ := NewRequestThrottle(RequestThrottleConfig{
		Capacity: 3,
		Rate:     2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	expected := []error{nil, nil, nil, ErrRequestThrottleTimeout}

	// Should time out by the 3rd request.
	for i := 0; i < 4; i++ {
		err := rt.Request(ctx)
		if err != expected[i] {
			t.Errorf("Unexpected error returned")
		}
	}

	// 3rd, 4th request will be rate limited, but should
	// complete before the context expires.
	ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	expected = []error{nil, nil, nil, nil}
	for i := 0; i < 4; i++ {
		err := rt.Request(ctx)
		if err != expected[i] {
			t.Errorf("Unexpected error returned")
		}
	}
}

func TestRequestThrottleConfig(t *testing.T) {
	if _, err := NewRequestThrottle(RequestThrottleConfig{Capacity: 0, Rate: 1}); err == nil {
		t.Errorf("Expected configuration error")
	}

	if _, err := NewRequestThrottle(RequestThrottleConfig{Capacity: 1, Rate: 0}); err == nil {
		t.Errorf("Expected configuration error")
	}
}

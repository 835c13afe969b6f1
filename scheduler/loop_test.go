package scheduler

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
	dts   []float64
}

func (r *recorder) Advance(dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "advance")
	r.dts = append(r.dts, dt)
}

func (r *recorder) draw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "draw")
}

func (r *recorder) snapshot() ([]string, []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...), append([]float64(nil), r.dts...)
}

func TestFrameLoopAdvancesBeforeDraw(t *testing.T) {
	r := &recorder{}
	loop := NewFrameLoop(r, r.draw, 200, nil)
	go loop.Run()

	deadline := time.After(2 * time.Second)
	for {
		calls, _ := r.snapshot()
		if len(calls) >= 6 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("Expected at least 3 ticks, got %v", calls)
		case <-time.After(5 * time.Millisecond):
		}
	}
	loop.Stop()
	<-loop.Done()

	calls, dts := r.snapshot()
	if len(calls)%2 != 0 {
		t.Fatalf("Expected whole ticks, got %v", calls)
	}
	for i := 0; i < len(calls); i += 2 {
		if calls[i] != "advance" || calls[i+1] != "draw" {
			t.Fatalf("Tick %d out of order: %v", i/2, calls[i:i+2])
		}
	}
	for i, dt := range dts {
		if dt <= 0 {
			t.Errorf("Tick %d: expected positive dt, got %f", i, dt)
		}
	}
}

func TestFrameLoopStopIsIdempotent(t *testing.T) {
	loop := NewFrameLoop(&recorder{}, nil, 0, nil)
	go loop.Run()

	loop.Stop()
	loop.Stop()

	select {
	case <-loop.Done():
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestTickWithoutDraw(t *testing.T) {
	r := &recorder{}
	loop := NewFrameLoop(r, nil, 60, nil)
	loop.tick(0.5)

	calls, dts := r.snapshot()
	if len(calls) != 1 || dts[0] != 0.5 {
		t.Errorf("Expected one advance by 0.5, got %v %v", calls, dts)
	}
}

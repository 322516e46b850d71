package pose

import (
	"context"
	"sync"
	"time"
)

// AsyncSensor runs a slow sensor on its own goroutine and hands the game loop
// the most recent frame without blocking. Older frames are dropped.
type AsyncSensor struct {
	src      Sensor
	interval time.Duration

	mu     sync.Mutex
	latest Frame
	err    error
	have   bool
}

// NewAsyncSensor wraps src. interval paces the producer between reads; zero
// reads as fast as src returns.
func NewAsyncSensor(src Sensor, interval time.Duration) *AsyncSensor {
	return &AsyncSensor{src: src, interval: interval}
}

// Run reads src until ctx is cancelled.
func (a *AsyncSensor) Run(ctx context.Context) error {
	var ticker *time.Ticker
	if a.interval > 0 {
		ticker = time.NewTicker(a.interval)
		defer ticker.Stop()
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f, err := a.src.Sample()
		a.mu.Lock()
		a.latest, a.have, a.err = f, err == nil, err
		a.mu.Unlock()

		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}
}

// Sample returns the latest frame. While the most recent read failed it
// returns that read's error, and ErrNotReady before the first read.
func (a *AsyncSensor) Sample() (Frame, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.have {
		if a.err != nil {
			return nil, a.err
		}
		return nil, ErrNotReady
	}
	return a.latest, nil
}

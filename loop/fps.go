package loop

import (
	"math"
	"sync/atomic"
	"time"
)

const rateWindow = time.Second

// rateRoundingThreshold: above this the reported rate is rounded to the
// nearest integer (a displayed counter jitters otherwise); below it the
// raw value is kept, low-rate precision matters more than smoothing.
const rateRoundingThreshold = 5

// rateCounter estimates a per-second event rate over a sliding window.
// Used once for frames (polled per completed render) and once for ticks
// (polled per executed fixed step).
//
// poll must always be called from the same goroutine; rate may be read
// from anywhere.
type rateCounter struct {
	getTime     timeObtainer
	count       int
	windowStart time.Time
	rateBits    atomic.Uint64
}

func newRateCounter(obtainer timeObtainer) *rateCounter {
	return &rateCounter{
		getTime:     obtainer,
		windowStart: obtainer(),
	}
}

// poll counts one event and recomputes the rate when the window closes.
func (c *rateCounter) poll() {
	c.count++

	now := c.getTime()
	elapsed := now.Sub(c.windowStart)
	if elapsed < rateWindow {
		return
	}

	rate := float64(c.count) / elapsed.Seconds()
	if rate > rateRoundingThreshold {
		rate = math.Round(rate)
	}

	c.rateBits.Store(math.Float64bits(rate))
	c.count = 0
	c.windowStart = now
}

// rate returns the last computed value, 0 until the first window closes.
func (c *rateCounter) rate() float64 {
	return math.Float64frombits(c.rateBits.Load())
}

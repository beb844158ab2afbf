package step

import (
	"sync/atomic"
	"time"
)

// MaxCatchUp bounds how many fixed steps a single iteration may execute.
// After a long stall (debugger pause, OS scheduling hiccup) an uncapped
// catch-up would freeze rendering while the simulation races the clock,
// so anything beyond the cap is dropped.
const MaxCatchUp = 5

// Accumulator converts elapsed wall-clock time into a bounded number of
// fixed-size simulation steps. The phase anchor only ever advances by
// whole periods, so repeated rounding never drifts the tick phase.
//
// Advance and Rebase may only be called from the tick context. The
// period may be swapped from any goroutine.
type Accumulator struct {
	periodNs int64 // atomic
	anchor   time.Time
}

func NewAccumulator(period time.Duration) *Accumulator {
	acc := &Accumulator{}
	acc.SetPeriod(period)
	return acc
}

// Rebase moves the phase anchor to t, forgetting any accumulated backlog.
func (a *Accumulator) Rebase(t time.Time) {
	a.anchor = t
}

// SetPeriod swaps the fixed-step period. Takes effect on the next Advance;
// the anchor is not retroactively corrected.
func (a *Accumulator) SetPeriod(period time.Duration) {
	atomic.StoreInt64(&a.periodNs, int64(period))
}

func (a *Accumulator) Period() time.Duration {
	return time.Duration(atomic.LoadInt64(&a.periodNs))
}

// Advance consumes the time between the anchor and t.
//
// due is floor(elapsed/period) - how many steps should have run by now.
// executed is due clamped to MaxCatchUp - how many the caller must run.
// The anchor absorbs all due periods either way: clamped-away steps are
// lost, not deferred.
func (a *Accumulator) Advance(t time.Time) (executed int, due int) {
	period := a.Period()
	if period <= 0 {
		return 0, 0
	}

	elapsed := t.Sub(a.anchor)
	if elapsed < period {
		return 0, 0
	}

	due = int(elapsed / period)
	a.anchor = a.anchor.Add(time.Duration(due) * period)

	executed = due
	if executed > MaxCatchUp {
		executed = MaxCatchUp
	}

	return executed, due
}

// UntilNext reports how much time is left before the next tick boundary.
func (a *Accumulator) UntilNext(t time.Time) time.Duration {
	left := a.Period() - t.Sub(a.anchor)
	if left < 0 {
		return 0
	}

	return left
}

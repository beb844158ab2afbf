package step

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testMakeTime(sec int, ms int) time.Time {
	return time.Date(2000, 01, 01, 12, 15, sec, ms*1000000, time.Local)
}

func TestAccumulator_Advance(t *testing.T) {
	const period = time.Millisecond * 10

	start := testMakeTime(30, 0)

	tests := []struct {
		name         string
		sampleAfter  time.Duration
		wantExecuted int
		wantDue      int
	}{
		{
			name:         "sub period elapsed",
			sampleAfter:  time.Millisecond * 9,
			wantExecuted: 0,
			wantDue:      0,
		},
		{
			name:         "exactly one period",
			sampleAfter:  time.Millisecond * 10,
			wantExecuted: 1,
			wantDue:      1,
		},
		{
			name:         "two and a half periods",
			sampleAfter:  time.Millisecond * 25,
			wantExecuted: 2,
			wantDue:      2,
		},
		{
			name:         "exactly at the cap",
			sampleAfter:  time.Millisecond * 50,
			wantExecuted: 5,
			wantDue:      5,
		},
		{
			name:         "long stall clamped",
			sampleAfter:  time.Second,
			wantExecuted: MaxCatchUp,
			wantDue:      100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccumulator(period)
			acc.Rebase(start)

			executed, due := acc.Advance(start.Add(tt.sampleAfter))

			assert.Equal(t, tt.wantExecuted, executed)
			assert.Equal(t, tt.wantDue, due)
		})
	}
}

func TestAccumulator_AnchorKeepsPhase(t *testing.T) {
	const period = time.Millisecond * 10

	start := testMakeTime(30, 0)
	acc := NewAccumulator(period)
	acc.Rebase(start)

	// 25ms in: two steps fire, 5ms of phase stays in the anchor
	executed, _ := acc.Advance(start.Add(time.Millisecond * 25))
	assert.Equal(t, 2, executed)

	// 5ms later we are exactly on the next boundary
	executed, _ = acc.Advance(start.Add(time.Millisecond * 30))
	assert.Equal(t, 1, executed)
}

func TestAccumulator_NoDriftOverLongRun(t *testing.T) {
	const period = time.Millisecond * 10
	const iterations = 10000

	rnd := rand.New(rand.NewSource(42))

	start := testMakeTime(0, 0)
	acc := NewAccumulator(period)
	acc.Rebase(start)

	current := start
	totalElapsed := time.Duration(0)
	totalExecuted := 0

	for i := 0; i < iterations; i++ {
		// random sub-period deltas: due is always 0 or 1, never clamped
		delta := time.Duration(rnd.Int63n(int64(period)))
		current = current.Add(delta)
		totalElapsed += delta

		executed, due := acc.Advance(current)
		assert.Equal(t, due, executed)

		totalExecuted += executed
	}

	assert.Equal(t, int(totalElapsed/period), totalExecuted,
		"accumulated step count drifted from floor(totalElapsed/period)")
}

func TestAccumulator_SetPeriodAppliesNextAdvance(t *testing.T) {
	start := testMakeTime(30, 0)

	acc := NewAccumulator(time.Second / 60)
	acc.Rebase(start)

	// consume two 60Hz periods, anchor now at +33.33ms
	executed, _ := acc.Advance(start.Add(time.Second / 30))
	assert.Equal(t, 2, executed)

	// switch to 30Hz: anchor untouched, next due uses the new period
	acc.SetPeriod(time.Second / 30)

	executed, _ = acc.Advance(start.Add(time.Second / 30).Add(time.Second / 60))
	assert.Equal(t, 0, executed, "half of the new period is not a step")

	executed, _ = acc.Advance(start.Add(time.Second / 30).Add(time.Second / 30))
	assert.Equal(t, 1, executed)
}

func TestAccumulator_UntilNext(t *testing.T) {
	const period = time.Millisecond * 10

	start := testMakeTime(30, 0)
	acc := NewAccumulator(period)
	acc.Rebase(start)

	assert.Equal(t, time.Millisecond*10, acc.UntilNext(start))
	assert.Equal(t, time.Millisecond*4, acc.UntilNext(start.Add(time.Millisecond*6)))
	assert.Equal(t, time.Duration(0), acc.UntilNext(start.Add(time.Millisecond*60)))
}

func TestAccumulator_NonPositivePeriod(t *testing.T) {
	start := testMakeTime(30, 0)
	acc := NewAccumulator(0)
	acc.Rebase(start)

	executed, due := acc.Advance(start.Add(time.Hour))
	assert.Equal(t, 0, executed)
	assert.Equal(t, 0, due)
}

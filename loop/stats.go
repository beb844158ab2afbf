package loop

import "time"

type Timings struct {
	StartAt  time.Time
	Duration time.Duration
}

// Stats is a snapshot of one tick iteration, delivered to the stats
// listener after the iteration completes.
type Stats struct {
	CurrentIteration uint64
	CurrentTick      uint64
	Mode             ExecutionMode

	CurrentFPS float64
	CurrentTPS float64

	DeltaTime  time.Duration
	TickRate   float64
	TickPeriod time.Duration

	FixedStepsDue      int
	FixedStepsExecuted int

	Execute      Timings
	Iteration    Timings
	VariableStep Timings
	FixedSteps   Timings
	Tasks        Timings
	FreeTime     time.Duration
}

package sched

import "time"

type (
	// Task is a background job that runs inside the tick loop's idle
	// window, between a finished iteration and the next tick boundary.
	Task struct {
		priority         Priority      // schedule weight against other tasks
		runAtLeastOnceIn time.Duration // hard deadline, runs even without capacity
		runAtMostOnceIn  time.Duration // do not run it too often
		taskFn           taskFn

		// stats
		currentScore float32 // scoreSkip; [0..1]; scoreOverdue
		lastRunAt    time.Time
		avgDuration  time.Duration
		runsCount    uint64
	}

	taskFn = func()
)

func NewTask(
	fn taskFn,
	priority Priority,
	runAtLeastOnceIn time.Duration,
	runAtMostOnceIn time.Duration,
) *Task {
	return &Task{
		priority:         priority,
		runAtLeastOnceIn: runAtLeastOnceIn,
		runAtMostOnceIn:  runAtMostOnceIn,
		taskFn:           fn,
	}
}

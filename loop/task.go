package loop

import "time"

type TaskPriority uint

const (
	TaskPriorityLow TaskPriority = iota
	TaskPriorityNormal
	TaskPriorityHigh
)

// Task is a background job the executor runs in the idle window of a
// tick iteration, when no fixed step fired and time remains before the
// next tick boundary.
type Task struct {
	fn               func()
	priority         TaskPriority  // task schedule priority against other tasks
	runAtLeastOnceIn time.Duration // but anyway it SHOULD be executed at least once per X time
	runAtMostOnceIn  time.Duration // do not run it too often
}

func NewTask(fn func(), options ...TaskInitializer) *Task {
	task := &Task{
		fn:               fn,
		priority:         TaskPriorityNormal,
		runAtLeastOnceIn: time.Minute,
		runAtMostOnceIn:  time.Second,
	}

	for _, init := range options {
		init(task)
	}

	return task
}

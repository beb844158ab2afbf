package sched

import (
	"sort"
	"time"
)

// Scheduler fits background tasks into the idle capacity a tick
// iteration has left over. Overdue tasks run regardless of capacity.
type Scheduler struct {
	scorer *Scorer
	tasks  []*Task
}

func NewScheduler(scorer *Scorer, tasks ...*Task) *Scheduler {
	return &Scheduler{
		scorer: scorer,
		tasks:  tasks,
	}
}

// Execute runs as many due tasks as fit into capacity, most urgent
// first. A task with an unknown duration is assumed to possibly exceed
// the capacity, so it runs alone and closes the window.
func (s *Scheduler) Execute(capacity time.Duration) {
	for _, task := range s.tasks {
		task.currentScore = s.scorer.scoreTask(task)
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].currentScore > s.tasks[j].currentScore
	})

	for _, task := range s.tasks {
		if task.currentScore == scoreSkip {
			continue
		}

		if task.currentScore == scoreOverdue {
			capacity -= s.run(task)
			continue
		}

		if capacity <= 0 {
			break
		}

		if task.avgDuration <= 0 {
			s.run(task)
			break
		}

		if task.avgDuration > capacity {
			continue
		}

		capacity -= s.run(task)
	}
}

// run executes the task and folds its duration into the moving average.
// Durations are measured on the wall clock: the scorer's clock decides
// when a task is due, not how long it took.
func (s *Scheduler) run(task *Task) time.Duration {
	task.lastRunAt = time.Now()
	task.taskFn()
	duration := time.Since(task.lastRunAt)

	task.avgDuration = ((task.avgDuration * time.Duration(task.runsCount)) + duration) /
		(time.Duration(task.runsCount) + 1)

	task.runsCount++
	return duration
}

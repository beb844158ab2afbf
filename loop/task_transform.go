package loop

import "github.com/go-glx/gameloop/loop/internal/sched"

func transformTasks(tasks []*Task) []*sched.Task {
	innerTasks := make([]*sched.Task, 0, len(tasks))

	for _, task := range tasks {
		innerTasks = append(innerTasks, transformTaskToInternal(task))
	}

	return innerTasks
}

func transformTaskToInternal(task *Task) *sched.Task {
	return sched.NewTask(
		task.fn,
		transformTaskPriorityToInternal(task.priority),
		task.runAtLeastOnceIn,
		task.runAtMostOnceIn,
	)
}

func transformTaskPriorityToInternal(p TaskPriority) sched.Priority {
	switch p {
	case TaskPriorityLow:
		return sched.PriorityLow
	case TaskPriorityHigh:
		return sched.PriorityHigh
	default:
		return sched.PriorityNormal
	}
}

package sched

import "time"

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

type (
	Priority uint8
)

const (
	scoreSkip    = -1
	scoreOverdue = 2
)

var priorityAsMultiplier = map[Priority]float32{
	PriorityLow:    0.75,
	PriorityNormal: 1.00,
	PriorityHigh:   1.25,
}

type (
	Scorer struct {
		// should return current time (time.Now())
		// redeclared for unit tests
		getTime timeObtainer
	}

	timeObtainer = func() time.Time
)

func NewScorer(obtainer timeObtainer) *Scorer {
	return &Scorer{
		getTime: obtainer,
	}
}

// scoreTask returns: -1, [0 to 1], +2
// where:
//
//	-1 - task excluded from running at all (ran too recently)
//	 0 - the lowest urgency
//	 1 - the highest urgency within the normal range
//	 2 - task overdue, runs right now, without capacity check
func (s *Scorer) scoreTask(task *Task) float32 {
	sinceLast := s.getTime().Sub(task.lastRunAt)

	if sinceLast < task.runAtMostOnceIn {
		return scoreSkip
	}

	if sinceLast >= task.runAtLeastOnceIn {
		return scoreOverdue
	}

	// position of "now" between the last run and the overdue deadline,
	// scaled by the task's priority:
	//
	//        75%  | 100% | 125%
	// pos  | low  | med  | hig
	// 0.00 | 0.00 | 0.00 | 0.00
	// 0.25 | 0.18 | 0.25 | 0.31
	// 0.50 | 0.37 | 0.50 | 0.62
	// 0.75 | 0.56 | 0.75 | 0.93
	// 1.00 | 0.75 | 1.00 | 1.25

	deadline := task.lastRunAt.Add(task.runAtLeastOnceIn)
	pos := float64(sinceLast) / float64(deadline.Sub(task.lastRunAt))

	return float32(pos) * priorityAsMultiplier[task.priority]
}

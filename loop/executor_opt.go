package loop

import "time"

type (
	ExecutorInitializer = func(*Executor)
)

// WithTickRate sets the fixed-step rate in Hz. The period is derived as
// 1/rate; use SetTickRate to reconfigure mid-run.
func WithTickRate(hz float64) ExecutorInitializer {
	return func(e *Executor) {
		if hz > 0 {
			e.targetTPS = hz
		}
	}
}

// WithVariableStepFn is called once per tick iteration with the actual
// elapsed wall-clock time (input polling and similar).
func WithVariableStepFn(fn VariableStepFn) ExecutorInitializer {
	return func(e *Executor) {
		e.variableStepFn = fn
	}
}

// WithFixedStepFn is the simulation update, called at the fixed rate.
// It takes no arguments: a fixed step cannot know how far behind the
// clock is, which keeps the simulation deterministic.
func WithFixedStepFn(fn FixedStepFn) ExecutorInitializer {
	return func(e *Executor) {
		e.fixedStepFn = fn
	}
}

// WithRenderFn is called between Surface.Acquire and Surface.Present.
// Declaring it is what makes the executor run a render context.
func WithRenderFn(fn RenderFn) ExecutorInitializer {
	return func(e *Executor) {
		e.renderFn = fn
	}
}

func WithSurface(surface Surface) ExecutorInitializer {
	return func(e *Executor) {
		e.surface = surface
	}
}

// WithAutoDirty controls the automatic dirty policy. When enabled (the
// default) every render attempt bumps the frame version first, so every
// signal produces a frame. Disable it for applications that only repaint
// after an explicit MarkDirty.
func WithAutoDirty(enabled bool) ExecutorInitializer {
	return func(e *Executor) {
		e.autoDirty = enabled
	}
}

// WithTickContextStartFn fires once on the tick context before its loop
// starts. An error is fatal to the context.
func WithTickContextStartFn(fn ContextStartFn) ExecutorInitializer {
	return func(e *Executor) {
		e.onTickContextStart = fn
	}
}

// WithRenderContextStartFn fires once on the render context before its
// loop starts. An error is fatal to the context.
func WithRenderContextStartFn(fn ContextStartFn) ExecutorInitializer {
	return func(e *Executor) {
		e.onRenderContextStart = fn
	}
}

// WithStatsListener receives a Stats snapshot after every tick
// iteration, on the tick context.
func WithStatsListener(fn StatsListener) ExecutorInitializer {
	return func(e *Executor) {
		e.statsListener = fn
	}
}

// WithTask registers a background task for the tick loop's idle window.
func WithTask(task *Task) ExecutorInitializer {
	return func(e *Executor) {
		e.tasks = append(e.tasks, task)
	}
}

// WithClock replaces the wall-clock source, mostly for tests. The clock
// must be monotonic: samples never decrease.
func WithClock(obtainer func() time.Time) ExecutorInitializer {
	return func(e *Executor) {
		e.getTime = obtainer
	}
}

func WithLogger(logger logger) ExecutorInitializer {
	return func(e *Executor) {
		e.logger = logger
	}
}

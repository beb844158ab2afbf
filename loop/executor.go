package loop

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-glx/gameloop/loop/internal/sched"
	"github.com/go-glx/gameloop/loop/internal/step"
)

const defaultTickRate = 60

type (
	VariableStepFn = func(elapsed time.Duration) error
	FixedStepFn    = func() error
	RenderFn       = func(buf Buffer) error
	ContextStartFn = func() error
	StatsListener  = func(Stats)

	timeObtainer = func() time.Time

	Executor struct {
		logger    logger
		getTime   timeObtainer
		surface   Surface
		autoDirty bool
		targetTPS float64

		variableStepFn       VariableStepFn
		fixedStepFn          FixedStepFn
		renderFn             RenderFn
		onTickContextStart   ContextStartFn
		onRenderContextStart ContextStartFn
		statsListener        StatsListener
		tasks                []*Task

		// state
		mode             ExecutionMode
		acc              *step.Accumulator
		dirty            dirtyTracker
		gate             *renderGate
		fps              *rateCounter
		tps              *rateCounter
		scheduler        *sched.Scheduler
		executeStartAt   time.Time
		currentIteration uint64
		currentTick      uint64

		// system
		running atomic.Bool
	}
)

func NewExecutor(initializers ...ExecutorInitializer) *Executor {
	e := &Executor{
		logger:    &fallbackLogger{},
		getTime:   time.Now,
		surface:   nullSurface{},
		autoDirty: true,
		targetTPS: defaultTickRate,
	}

	for _, init := range initializers {
		init(e)
	}

	e.acc = step.NewAccumulator(periodOf(e.targetTPS))
	e.fps = newRateCounter(e.getTime)
	e.tps = newRateCounter(e.getTime)

	if len(e.tasks) > 0 {
		e.scheduler = sched.NewScheduler(
			sched.NewScorer(e.getTime),
			transformTasks(e.tasks)...,
		)
	}

	return e
}

// Execute selects the execution mode from the declared capabilities,
// starts one or two loop contexts and blocks until the keep-alive
// context exits. Returns the keep-alive context's fatal error, if any;
// a failure on a non-keep-alive context is reported through the logger
// and terminates only that context.
func (e *Executor) Execute(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hasUpdate := e.fixedStepFn != nil || e.variableStepFn != nil
	e.mode = selectMode(hasUpdate, e.renderFn != nil)

	e.listenForInterrupt(ctx)
	e.executeStartAt = e.getTime()
	e.acc.Rebase(e.executeStartAt)

	switch e.mode {
	case ModeRenderOnly:
		return e.runRenderContext(ctx)

	case ModeTickAndRender:
		e.gate = newRenderGate()

		renderExited := make(chan struct{})
		go func() {
			defer close(renderExited)

			if err := e.runRenderContext(ctx); err != nil {
				// render is not a keep-alive context: report and let the
				// tick context keep running
				e.logger.Error(err)
			}
		}()

		err := e.runTickContext(ctx)
		cancel()
		<-renderExited

		return err

	default: // ModeInline, ModeTickOnly
		return e.runTickContext(ctx)
	}
}

// Mode reports the selected execution mode. Valid once Execute started.
func (e *Executor) Mode() ExecutionMode {
	return e.mode
}

// MarkDirty requests a render of the current state. Safe to call from
// any goroutine; concurrent marks collapse into the next render.
func (e *Executor) MarkDirty() {
	e.dirty.markDirty()
}

// SetTickRate reconfigures the fixed-step rate mid-run. The new period
// applies from the next tick iteration; the accumulated phase anchor is
// not retroactively corrected.
func (e *Executor) SetTickRate(hz float64) {
	if hz <= 0 {
		return
	}

	e.acc.SetPeriod(periodOf(hz))
}

// TickRate returns the current fixed-step rate in Hz.
func (e *Executor) TickRate() float64 {
	return rateOf(e.acc.Period())
}

func (e *Executor) runTickContext(ctx context.Context) error {
	if e.onTickContextStart != nil {
		if err := e.onTickContextStart(); err != nil {
			return fmt.Errorf("tick context start: %w", err)
		}
	}

	tPrev := e.getTime()

	for e.running.Load() {
		e.currentIteration++

		iterStart := e.getTime()
		elapsed := iterStart.Sub(tPrev)
		tPrev = iterStart

		varTimings, err := e.runVariableStep(elapsed)
		if err != nil {
			return e.fatalTick("variable step", err)
		}

		fixedStart := e.getTime()
		executed, due := e.acc.Advance(iterStart)
		for i := 0; i < executed; i++ {
			if e.fixedStepFn != nil {
				if err := e.fixedStepFn(); err != nil {
					return e.fatalTick("fixed step", err)
				}
			}

			e.currentTick++
			e.tps.poll()
		}
		fixedEnd := e.getTime()

		// signal exactly once per iteration, regardless of due
		rendered, err := e.signalRender()
		if err != nil {
			return e.fatalTick("render", err)
		}

		taskTimings := e.runTasks()

		if e.statsListener != nil {
			now := e.getTime()
			e.statsListener(Stats{
				CurrentIteration: e.currentIteration,
				CurrentTick:      e.currentTick,
				Mode:             e.mode,

				CurrentFPS: e.fps.rate(),
				CurrentTPS: e.tps.rate(),

				DeltaTime:  elapsed,
				TickRate:   e.TickRate(),
				TickPeriod: e.acc.Period(),

				FixedStepsDue:      due,
				FixedStepsExecuted: executed,

				Execute:      Timings{StartAt: e.executeStartAt, Duration: now.Sub(e.executeStartAt)},
				Iteration:    Timings{StartAt: iterStart, Duration: now.Sub(iterStart)},
				VariableStep: varTimings,
				FixedSteps:   Timings{StartAt: fixedStart, Duration: fixedEnd.Sub(fixedStart)},
				Tasks:        taskTimings,
				FreeTime:     e.acc.UntilNext(now),
			})
		}

		if due == 0 && !rendered {
			// nothing happened this iteration, give the core away while
			// waiting for the next tick boundary
			runtime.Gosched()
		}
	}

	return nil
}

func (e *Executor) runVariableStep(elapsed time.Duration) (Timings, error) {
	if e.variableStepFn == nil {
		return Timings{}, nil
	}

	start := e.getTime()
	err := e.variableStepFn(elapsed)

	return Timings{StartAt: start, Duration: e.getTime().Sub(start)}, err
}

// signalRender hands the completed iteration to the render side. In
// inline mode the signal IS the render call, on this same goroutine.
// The auto-dirty bump belongs to the tick context whenever one exists.
func (e *Executor) signalRender() (rendered bool, err error) {
	switch e.mode {
	case ModeInline:
		if e.autoDirty {
			e.dirty.markDirty()
		}
		return e.renderOnce()

	case ModeTickAndRender:
		if e.autoDirty {
			e.dirty.markDirty()
		}
		e.gate.signal()

	case ModeTickOnly:
		// no render capability, nothing to wake
	}

	return false, nil
}

func (e *Executor) runTasks() Timings {
	if e.scheduler == nil {
		return Timings{}
	}

	start := e.getTime()
	e.scheduler.Execute(e.acc.UntilNext(start))

	return Timings{StartAt: start, Duration: e.getTime().Sub(start)}
}

func (e *Executor) runRenderContext(ctx context.Context) error {
	if e.onRenderContextStart != nil {
		if err := e.onRenderContextStart(); err != nil {
			return fmt.Errorf("render context start: %w", err)
		}
	}

	for e.running.Load() {
		if e.mode == ModeRenderOnly && e.autoDirty {
			// no tick context exists, the render loop applies the
			// auto-dirty policy itself
			e.dirty.markDirty()
		}

		rendered, err := e.renderOnce()
		if err != nil {
			return fmt.Errorf("error on %d frame: %w", e.dirty.version(), err)
		}

		switch e.mode {
		case ModeTickAndRender:
			if !e.gate.wait(ctx) {
				return nil
			}
		default: // ModeRenderOnly: free-running, no tick producer to wait for
			if !rendered {
				runtime.Gosched()
			}
		}
	}

	return nil
}

// renderOnce performs a single render attempt: skip when nothing
// changed or the surface is not ready, otherwise render between acquire
// and present. Only ever called from one context at a time, per mode.
func (e *Executor) renderOnce() (rendered bool, err error) {
	if !e.dirty.renderDue() {
		return false, nil
	}

	version := e.dirty.version()

	buf, ok := e.surface.Acquire()
	if !ok {
		return false, nil
	}

	if e.renderFn != nil {
		if err := e.renderFn(buf); err != nil {
			return false, err
		}
	}

	e.surface.Present()
	e.dirty.markRendered(version)
	e.fps.poll()

	return true, nil
}

func (e *Executor) listenForInterrupt(ctx context.Context) {
	e.running.Store(true)

	go func() {
		<-ctx.Done()
		e.running.Store(false)
	}()
}

func (e *Executor) fatalTick(stage string, err error) error {
	return fmt.Errorf("error on %d iteration, %s: %w", e.currentIteration, stage, err)
}

func periodOf(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

func rateOf(period time.Duration) float64 {
	return float64(time.Second) / float64(period)
}

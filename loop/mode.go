package loop

// ExecutionMode is decided once, before any context starts, from the
// capabilities the application declared. It never changes afterward.
type ExecutionMode uint8

const (
	// ModeInline runs a single tick loop with the render attempt folded
	// into it. No extra goroutine is started.
	ModeInline ExecutionMode = iota

	// ModeTickOnly runs a single tick loop. There is no render capability,
	// so no gate exists and signaling is a no-op; the dirty/version
	// bookkeeping still works for callers that render on their own.
	ModeTickOnly

	// ModeRenderOnly runs a free-running render loop. There is no tick
	// producer to synchronize against, so the loop yields instead of
	// waiting whenever no render was due.
	ModeRenderOnly

	// ModeTickAndRender runs a tick goroutine and a render goroutine
	// connected by the gate.
	ModeTickAndRender
)

func (m ExecutionMode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeTickOnly:
		return "tick-only"
	case ModeRenderOnly:
		return "render-only"
	case ModeTickAndRender:
		return "tick-and-render"
	default:
		return "unknown"
	}
}

// selectMode applies the capability table:
//
//	update | render | mode
//	  no   |   no   | inline
//	  yes  |   no   | tick-only
//	  no   |   yes  | render-only
//	  yes  |   yes  | tick-and-render
func selectMode(hasUpdate bool, hasRender bool) ExecutionMode {
	switch {
	case hasUpdate && hasRender:
		return ModeTickAndRender
	case hasUpdate:
		return ModeTickOnly
	case hasRender:
		return ModeRenderOnly
	default:
		return ModeInline
	}
}

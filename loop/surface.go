package loop

// Buffer is the opaque presentation buffer handed to the render
// callback. The executor never looks inside it.
type Buffer = any

// Surface is the presentation target boundary. The render callback is
// invoked strictly between Acquire and Present.
type Surface interface {
	// Acquire returns the buffer to render into. ok == false means the
	// target is not ready; the render attempt is skipped and the dirty
	// mark is kept for the next attempt.
	Acquire() (buf Buffer, ok bool)

	// Present commits the acquired buffer.
	Present()
}

// nullSurface is the default when no real presentation target is wired.
type nullSurface struct{}

func (nullSurface) Acquire() (Buffer, bool) { return nil, true }
func (nullSurface) Present()                {}

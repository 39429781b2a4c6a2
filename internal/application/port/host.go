package port

// Host is the event loop running the frames.
type Host interface {
	// CloseRequested reports whether a close signal arrived for this frame.
	CloseRequested() bool
	// CancelClose drops the pending close signal.
	CancelClose()
	// Close issues a new close signal, delivered on the next frame.
	Close()
}

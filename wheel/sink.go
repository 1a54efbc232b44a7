package wheel

// ReportSink receives canonical state changes from the decoder.
// Implementations apply them to an in-memory report; Flush sends the
// accumulated report once. The decoder flushes at most once per poll
// cycle, never per individual change.
type ReportSink interface {
	Press(button int)
	Release(button int)
	SetHat(h Hat)
	Flush() error
}

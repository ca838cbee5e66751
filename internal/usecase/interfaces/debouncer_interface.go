package interfaces

// IDebouncer runs the most recently triggered function once a quiet period
// has elapsed. Triggering again restarts the wait and replaces the function.
type IDebouncer interface {
	Trigger(fn func())
	Stop()
}

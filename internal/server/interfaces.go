package server

// Server defines the lifecycle contract of the listeners managed by this
// package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and every listener has shut down.
	RunServer()

	// Shutdown gracefully stops the listeners and frees associated resources.
	Shutdown()
}

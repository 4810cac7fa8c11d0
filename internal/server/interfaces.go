package server

// Server runs the enabled transports together with the background workers.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or a
	// transport fails, then shuts everything down. The returned error joins
	// the transport failure, if any, with failed shutdown hooks.
	RunServer() error

	// Shutdown stops the transports. Calling it more than once is safe.
	Shutdown()
}

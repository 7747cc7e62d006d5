package server

// Server is the lifecycle of the record store process.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer() error

	// Shutdown stops the listener and waits for in-flight requests.
	Shutdown()
}

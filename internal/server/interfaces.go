package server

// Server defines the lifecycle contract of the catalog server.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT is received or the
// listener fails. Shutdown stops accepting connections and waits for
// in-flight requests.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

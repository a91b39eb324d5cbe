package server

// Server is a transport whose RunServer blocks until Shutdown.
type Server interface {
	RunServer()
	Shutdown()
}

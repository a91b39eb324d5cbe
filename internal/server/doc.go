// Package server runs the vault's HTTP API and gRPC health endpoint and stops
// both gracefully on SIGINT, SIGTERM or SIGQUIT.
package server

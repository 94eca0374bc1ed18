// Package server runs the catalog HTTP API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown of in-flight requests.
package server

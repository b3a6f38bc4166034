// Package server wires and runs the application's listeners.
//
// It provides orchestration for the API and metrics listener lifecycles,
// including startup, signal handling, and graceful shutdown of all enabled
// listeners.
package server

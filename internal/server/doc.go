// Package server runs the nekmart-admin HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server

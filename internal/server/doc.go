// Package server runs the record store's HTTP listener: startup, signal
// handling and graceful shutdown.
package server

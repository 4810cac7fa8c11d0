// Package server runs the purchase tracker API.
//
// It owns the HTTP listener, the optional gRPC health listener and the
// background workers. All of them share one lifetime: a termination signal
// or a failing listener starts a graceful shutdown bounded by a timeout,
// after which the registered shutdown hooks run in order.
package server

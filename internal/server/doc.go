// Package server wires configuration, logging, metrics, middleware and the
// provider registry into the HTTP server.
package server

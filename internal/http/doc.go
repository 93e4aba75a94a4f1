// Package http provides the HTTP handlers for the computation service.
package http

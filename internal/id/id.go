// Package id provides typed, lexicographically sortable identifiers.
package id

import "github.com/oklog/ulid/v2"

// RequestID identifies an API request
type RequestID string

// RequestPrefix makes request IDs recognizable in logs
const RequestPrefix = "req"

// NewRequestID generates a prefixed ULID for a request
func NewRequestID() RequestID {
	return RequestID(RequestPrefix + "_" + ulid.Make().String())
}

// String returns the ID as a plain string
func (r RequestID) String() string {
	return string(r)
}

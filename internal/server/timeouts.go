package server

import "time"

// The API is GET-only with tiny requests, so reads stay tight. Writes
// get more room: /report serializes every covered sport's full section
// in one response.
const (
	readTimeout  = 5 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout bounds draining in-flight requests plus stopping the
// poller. Kept a var so tests can shrink it.
var shutdownTimeout = 15 * time.Second

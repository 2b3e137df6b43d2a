package services

// Error taxonomy for discovery operations. Each carries the exact
// plain-language message shown to the user; the tool boundary converts
// these into {"error": ...} payloads and nothing crosses it as a Go error.

// A lookup produced zero candidates (geocode miss).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// An external service call failed.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// Filtering left zero qualifying candidates.
type EmptyResultError struct {
	Message string
}

func (e *EmptyResultError) Error() string { return e.Message }

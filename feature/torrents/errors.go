package torrents

import "fmt"

// ValidationError reports a malformed torrent request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CommandError wraps a failed invocation of the download manager.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("download manager command failed: %v", e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a non-success answer from the search API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("search api returned status %d", e.StatusCode)
}

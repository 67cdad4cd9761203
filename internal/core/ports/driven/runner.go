package driven

import "context"

// CommandRunner executes an external command and captures its standard
// output. A non-zero exit status is returned as an error. Abstracted so
// extractors that shell out can be tested without the real tool installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

package ports

import "context"

// Port: single-prompt completion against a language model.
type Completer interface {
	// Return the model's text response for the given prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}

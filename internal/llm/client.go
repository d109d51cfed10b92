package llm

import "context"

// Request carries one prompt and its decoding parameters. Built fresh per
// sub-task, never reused across calls.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Client is a single-attempt text-generation primitive. A non-nil error is
// the only failure signal; retries, if any, belong to the caller.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

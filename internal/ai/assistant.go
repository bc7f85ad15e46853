package ai

import "context"

// Request carries one engine answer to rephrase: the user's original
// question or command, the structured answer the matching engine
// produced, and optional profile context.
type Request struct {
	Question string
	Answer   string
	Profile  string
}

// Assistant rewrites a structured engine answer into conversational
// prose. Implementations must keep every fact of the answer intact; the
// caller falls back to the raw answer when composition fails.
type Assistant interface {
	Compose(ctx context.Context, req *Request) (string, error)
}

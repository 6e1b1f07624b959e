package ai

import "context"

// Generator produces a response for a user query, optionally enriched with
// patient context. Implementations always return text: a degraded or blocked
// provider answers with a fixed string, never an error, so callers need no
// error branch.
type Generator interface {
	Generate(ctx context.Context, queryText, patientContext string) string
}

package service

import (
	"context"
)

// SystemInstruction is the fixed system prompt sent with every completion.
const SystemInstruction = "You are a helpful assistant that answers questions based only on the provided context."

// CompletionClient sends a question with its retrieved context to a
// language-model provider. A nil error with a blank answer means the
// provider produced no answer; provider failures come back as typed errors
// (see ProviderError).
type CompletionClient interface {
	Complete(ctx context.Context, question, contextText string) (string, error)
}

// ContextRetriever assembles a token-bounded context for a question.
type ContextRetriever interface {
	Select(ctx context.Context, question string, tokenBudget int) (string, error)
}

// CorpusIndex lists corpus documents and serves their extracted text.
// Both operations are fail-open: problems are logged and the corpus
// degrades to fewer (or empty) documents.
type CorpusIndex interface {
	Scan(ctx context.Context) []string
	ExtractText(ctx context.Context, path string) string
}

// TokenCounter measures text in model-tokenizer units.
type TokenCounter interface {
	Count(text string) int
}

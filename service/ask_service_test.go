package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvd/askbot-be/types"
	"github.com/tranvd/askbot-be/utils"
)

type fakeStore struct {
	values   map[string]string
	getCalls int
	setCalls int
	lastTTL  time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (s *fakeStore) Get(ctx context.Context, fingerprint string) (string, bool) {
	s.getCalls++
	value, ok := s.values[fingerprint]
	return value, ok
}

func (s *fakeStore) Set(ctx context.Context, fingerprint, answer string, ttl time.Duration) {
	s.setCalls++
	s.lastTTL = ttl
	s.values[fingerprint] = answer
}

func (s *fakeStore) Close(ctx context.Context) error { return nil }

type fakeRetriever struct {
	context       string
	err           error
	calls         int
	budget        int
	seenRequestID string
}

func (r *fakeRetriever) Select(ctx context.Context, question string, tokenBudget int) (string, error) {
	r.calls++
	r.budget = tokenBudget
	r.seenRequestID = RequestID(ctx)
	return r.context, r.err
}

type fakeCompletion struct {
	answer      string
	err         error
	calls       int
	lastContext string
}

func (c *fakeCompletion) Complete(ctx context.Context, question, contextText string) (string, error) {
	c.calls++
	c.lastContext = contextText
	return c.answer, c.err
}

func blockTexts(blocks []types.Block) []string {
	var texts []string
	for _, b := range blocks {
		if b.Text != nil {
			texts = append(texts, b.Text.Text)
		}
	}
	return texts
}

func containsText(blocks []types.Block, substr string) bool {
	for _, text := range blockTexts(blocks) {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

func TestAskEmptyQuestion(t *testing.T) {
	store := newFakeStore()
	retriever := &fakeRetriever{}
	completion := &fakeCompletion{}
	svc := NewAskService(store, retriever, completion, 7000, time.Hour)

	blocks := svc.Ask(context.Background(), "   ")

	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Text.Text, "Usage:")

	// Terminal state, nothing else is touched.
	assert.Zero(t, store.getCalls)
	assert.Zero(t, retriever.calls)
	assert.Zero(t, completion.calls)
}

func TestAskCacheHitShortCircuits(t *testing.T) {
	store := newFakeStore()
	store.values[utils.QuestionFingerprint("Cached Q?")] = "Cached answer."
	retriever := &fakeRetriever{}
	completion := &fakeCompletion{}
	svc := NewAskService(store, retriever, completion, 7000, time.Hour)

	blocks := svc.Ask(context.Background(), "Cached Q?")

	assert.True(t, containsText(blocks, "You asked:"))
	assert.True(t, containsText(blocks, "Cached Q?"))
	assert.True(t, containsText(blocks, "Cached answer."))
	assert.Zero(t, retriever.calls)
	assert.Zero(t, completion.calls)
}

func TestAskCacheMissFullPipeline(t *testing.T) {
	store := newFakeStore()
	retriever := &fakeRetriever{context: "some context"}
	completion := &fakeCompletion{answer: "AI is artificial intelligence."}
	svc := NewAskService(store, retriever, completion, 7000, 24*time.Hour)

	blocks := svc.Ask(context.Background(), "What is AI?")

	assert.Equal(t, 1, retriever.calls)
	assert.Equal(t, 7000, retriever.budget)
	// The retriever sees the fingerprint as the request correlation id.
	assert.Equal(t, utils.QuestionFingerprint("What is AI?"), retriever.seenRequestID)
	assert.Equal(t, 1, completion.calls)
	assert.Equal(t, "some context", completion.lastContext)

	assert.True(t, containsText(blocks, "You asked:"))
	assert.True(t, containsText(blocks, "What is AI?"))
	assert.True(t, containsText(blocks, "AI is artificial intelligence."))

	// Answer cached under the normalized fingerprint with the configured TTL.
	assert.Equal(t, 1, store.setCalls)
	assert.Equal(t, 24*time.Hour, store.lastTTL)
	cached, ok := store.values[utils.QuestionFingerprint("what is ai")]
	require.True(t, ok)
	assert.Equal(t, "AI is artificial intelligence.", cached)
}

func TestAskRetrieverFailure(t *testing.T) {
	store := newFakeStore()
	retriever := &fakeRetriever{err: errors.New("corpus exploded")}
	completion := &fakeCompletion{}
	svc := NewAskService(store, retriever, completion, 7000, time.Hour)

	blocks := svc.Ask(context.Background(), "What is AI?")

	assert.True(t, containsText(blocks, "something went wrong"))
	assert.Zero(t, completion.calls)
	assert.Zero(t, store.setCalls)
}

func TestAskProviderFailure(t *testing.T) {
	store := newFakeStore()
	retriever := &fakeRetriever{context: "ctx"}
	completion := &fakeCompletion{err: &ProviderError{Kind: KindRateLimit, Err: errors.New("429")}}
	svc := NewAskService(store, retriever, completion, 7000, time.Hour)

	blocks := svc.Ask(context.Background(), "What is AI?")

	assert.True(t, containsText(blocks, "trouble connecting"))
	assert.Zero(t, store.setCalls)
}

func TestAskNoAnswerNeverCached(t *testing.T) {
	store := newFakeStore()
	retriever := &fakeRetriever{context: "ctx"}
	completion := &fakeCompletion{answer: "   "}
	svc := NewAskService(store, retriever, completion, 7000, time.Hour)

	blocks := svc.Ask(context.Background(), "Unknown Q?")
	assert.True(t, containsText(blocks, "couldn't find"))
	assert.Zero(t, store.setCalls)

	// The identical question reaches the provider again: no stale entry.
	svc.Ask(context.Background(), "Unknown Q?")
	assert.Equal(t, 2, completion.calls)
}

func TestAskEmptyContextStillCompletes(t *testing.T) {
	// Empty corpus: the selector returns "" and the provider is still
	// called; a real answer is cached and rendered normally.
	store := newFakeStore()
	retriever := &fakeRetriever{context: ""}
	completion := &fakeCompletion{answer: "General knowledge answer."}
	svc := NewAskService(store, retriever, completion, 7000, time.Hour)

	blocks := svc.Ask(context.Background(), "What is AI?")

	assert.Equal(t, 1, completion.calls)
	assert.Equal(t, "", completion.lastContext)
	assert.Equal(t, 1, store.setCalls)
	assert.True(t, containsText(blocks, "General knowledge answer."))
}

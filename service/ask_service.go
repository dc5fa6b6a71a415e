package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tranvd/askbot-be/database"
	"github.com/tranvd/askbot-be/types"
	"github.com/tranvd/askbot-be/utils"
)

const (
	msgUsage = "*Usage:* `/ask <your question>`\n_Ask a question and I'll try to answer using my knowledge base._"

	msgGenericError      = "Sorry, something went wrong while looking that up. Please try again later."
	msgTroubleConnecting = "Sorry, I'm having trouble connecting to the answer service right now. Please try again later."
	msgNotFound          = "Sorry, I couldn't find an answer to your question."
)

// AskService runs the question-answering pipeline: normalize the question
// into a fingerprint, check the cache, retrieve context, call the
// completion provider, store the answer and render the reply blocks.
// Dependencies are injected once at startup.
type AskService struct {
	store      database.AnswerStore
	retriever  ContextRetriever
	completion CompletionClient

	maxContextTokens int
	cacheTTL         time.Duration
}

func NewAskService(store database.AnswerStore, retriever ContextRetriever, completion CompletionClient, maxContextTokens int, cacheTTL time.Duration) *AskService {
	return &AskService{
		store:            store,
		retriever:        retriever,
		completion:       completion,
		maxContextTokens: maxContextTokens,
		cacheTTL:         cacheTTL,
	}
}

// Ask answers one question. It always returns renderable blocks; every
// failure path maps to one of three user-visible messages and internal
// errors never reach the caller.
func (s *AskService) Ask(ctx context.Context, question string) []types.Block {
	question = strings.TrimSpace(question)
	if question == "" {
		return usageBlocks()
	}

	fingerprint := utils.QuestionFingerprint(question)
	// The fingerprint doubles as the correlation id for every downstream
	// log line in this request.
	ctx = WithRequestID(ctx, fingerprint)
	log.Printf("ask received | fingerprint=%s", fingerprint)

	if answer, ok := s.store.Get(ctx, fingerprint); ok {
		log.Printf("cache hit | fingerprint=%s", fingerprint)
		return answerBlocks(question, answer)
	}
	log.Printf("cache miss | fingerprint=%s", fingerprint)

	contextText, err := s.retriever.Select(ctx, question, s.maxContextTokens)
	if err != nil {
		log.Printf("context retrieval failed | fingerprint=%s error=%v", fingerprint, err)
		return messageBlocks(msgGenericError)
	}

	answer, err := s.completion.Complete(ctx, question, contextText)
	if err != nil {
		var providerErr *ProviderError
		if errors.As(err, &providerErr) {
			log.Printf("completion provider failed (%s) | fingerprint=%s error=%v", providerErr.Kind, fingerprint, err)
		} else {
			log.Printf("completion failed unexpectedly | fingerprint=%s error=%v", fingerprint, err)
		}
		return messageBlocks(msgTroubleConnecting)
	}

	if strings.TrimSpace(answer) == "" {
		// Never cache a non-answer, so an identical question later gets
		// another shot at the provider.
		log.Printf("no answer produced | fingerprint=%s", fingerprint)
		return messageBlocks(msgNotFound)
	}

	s.store.Set(ctx, fingerprint, answer, s.cacheTTL)
	log.Printf("answer cached and sent | fingerprint=%s", fingerprint)
	return answerBlocks(question, answer)
}

func usageBlocks() []types.Block {
	return []types.Block{types.SectionBlock(msgUsage)}
}

func messageBlocks(message string) []types.Block {
	return []types.Block{types.SectionBlock(message)}
}

// answerBlocks echoes the original question as a quoted preamble before
// the answer body.
func answerBlocks(question, answer string) []types.Block {
	return []types.Block{
		types.SectionBlock(fmt.Sprintf("*You asked:*\n> %s", question)),
		types.DividerBlock(),
		types.SectionBlock(answer),
	}
}

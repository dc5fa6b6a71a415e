package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/sashabaranov/go-openai"

	"github.com/tranvd/askbot-be/types"
)

type OpenAIService struct {
	client *openai.Client
	config types.CompletionConfig
}

func NewOpenAIService(baseURL, apiKey string, completionConfig types.CompletionConfig) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIService{
		client: client,
		config: completionConfig,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, question, contextText string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: SystemInstruction,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf("Context: %s\n\nQuestion: %s", contextText, question),
		},
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       s.config.Model,
			Messages:    messages,
			MaxTokens:   s.config.MaxOutputTokens,
			Temperature: s.config.Temperature,
		},
	)
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		log.Println("openai returned no choices")
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError maps go-openai errors onto the provider error
// taxonomy and logs rate limits separately from everything else.
func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		kind := KindProvider
		switch apiErr.HTTPStatusCode {
		case 429:
			kind = KindRateLimit
		case 401, 403:
			kind = KindAuth
		case 400:
			kind = KindBadRequest
		}
		if kind == KindRateLimit {
			log.Printf("openai rate limit hit: %v", apiErr)
		} else {
			log.Printf("openai API error (%s): %v", kind, apiErr)
		}
		return &ProviderError{Kind: kind, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		log.Printf("openai request error: %v", reqErr)
		return &ProviderError{Kind: KindProvider, Err: err}
	}

	log.Printf("unexpected error during openai call: %v", err)
	return fmt.Errorf("openai completion failed: %w", err)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/tranvd/askbot-be/types"
)

// GeminiService is the alternative completion provider.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey string, completionConfig types.CompletionConfig) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(completionConfig.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemInstruction)},
	}
	model.SetMaxOutputTokens(int32(completionConfig.MaxOutputTokens))
	model.SetTemperature(completionConfig.Temperature)

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Complete(ctx context.Context, question, contextText string) (string, error) {
	prompt := fmt.Sprintf("Context: %s\n\nQuestion: %s", contextText, question)
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Println("gemini returned no candidates")
		return "", nil
	}

	var answer string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			answer += string(text)
		}
	}
	return answer, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

func classifyGeminiError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		kind := KindProvider
		switch apiErr.Code {
		case 429:
			kind = KindRateLimit
		case 401, 403:
			kind = KindAuth
		case 400:
			kind = KindBadRequest
		}
		if kind == KindRateLimit {
			log.Printf("gemini rate limit hit: %v", apiErr)
		} else {
			log.Printf("gemini API error (%s): %v", kind, apiErr)
		}
		return &ProviderError{Kind: kind, Err: err}
	}

	log.Printf("unexpected error during gemini call: %v", err)
	return fmt.Errorf("gemini completion failed: %w", err)
}

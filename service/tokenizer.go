package service

import (
	"log"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TiktokenCounter counts tokens with the model's own tokenizer, falling
// back to the generic cl100k_base BPE when the model is unknown to
// tiktoken, and to a rough character heuristic when no encoding could be
// loaded at all.
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

func NewTokenCounter(model string) *TiktokenCounter {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		log.Printf("no tokenizer for model %s, falling back to %s: %v", model, fallbackEncoding, err)
		encoding, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			log.Printf("failed to load %s encoding, using character estimate: %v", fallbackEncoding, err)
			encoding = nil
		}
	}
	return &TiktokenCounter{encoding: encoding}
}

func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	if c.encoding == nil {
		// ~4 characters per token, same estimate BPE tokenizers average out to
		tokens := len([]rune(text)) / 4
		if tokens == 0 {
			return 1
		}
		return tokens
	}
	return len(c.encoding.Encode(text, nil, nil))
}

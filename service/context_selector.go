package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/tranvd/askbot-be/utils"
)

// Unicode classes, not \w: Go's \w is ASCII-only and would drop accented
// and non-Latin keywords from the question entirely.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// ContextSelector finds paragraphs relevant to a question across the
// whole corpus and assembles them into a context bounded by a token
// budget. Chunks keep directory order, then paragraph order; there is no
// relevance ranking.
type ContextSelector struct {
	corpus CorpusIndex
	tokens TokenCounter
}

func NewContextSelector(corpus CorpusIndex, tokens TokenCounter) *ContextSelector {
	return &ContextSelector{
		corpus: corpus,
		tokens: tokens,
	}
}

func (s *ContextSelector) Select(ctx context.Context, question string, tokenBudget int) (string, error) {
	keywords := questionKeywords(question)

	var selected []string
	totalTokens := 0

	docs := s.corpus.Scan(ctx)
	for _, path := range docs {
		text := s.corpus.ExtractText(ctx, path)
		if text == "" {
			continue
		}

		name := utils.DisplayName(path)
		budgetReached := false
		for _, chunk := range strings.Split(text, "\n\n") {
			if !chunkMatches(chunk, keywords) {
				continue
			}
			tagged := fmt.Sprintf("[Source: %s]\n%s", name, strings.TrimSpace(chunk))
			chunkTokens := s.tokens.Count(tagged)
			// Strict greater-than: a chunk landing exactly on the budget fits,
			// the first one over it ends the selection entirely.
			if totalTokens+chunkTokens > tokenBudget {
				budgetReached = true
				break
			}
			selected = append(selected, tagged)
			totalTokens += chunkTokens
		}
		if budgetReached {
			break
		}
	}

	log.Printf("selected %d context chunks (%d tokens) from %d documents%s", len(selected), totalTokens, len(docs), logTag(ctx))
	return strings.Join(selected, "\n\n"), nil
}

// questionKeywords tokenizes the question into a lowercase keyword set.
func questionKeywords(question string) map[string]bool {
	words := wordRe.FindAllString(strings.ToLower(question), -1)
	keywords := make(map[string]bool, len(words))
	for _, w := range words {
		keywords[w] = true
	}
	return keywords
}

// chunkMatches uses raw substring containment, so a keyword "cat" also
// matches inside "category". Kept that way deliberately; tightening it to
// word boundaries would silently change retrieval recall.
func chunkMatches(chunk string, keywords map[string]bool) bool {
	low := strings.ToLower(chunk)
	for keyword := range keywords {
		if strings.Contains(low, keyword) {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCorpus serves documents from memory in a fixed order.
type fakeCorpus struct {
	paths []string
	texts map[string]string
}

func (f *fakeCorpus) Scan(ctx context.Context) []string {
	return f.paths
}

func (f *fakeCorpus) ExtractText(ctx context.Context, path string) string {
	return f.texts[path]
}

// stubCounter returns fixed counts per exact text, and the word count for
// anything it was not primed with.
type stubCounter struct {
	counts map[string]int
}

func (c *stubCounter) Count(text string) int {
	if n, ok := c.counts[text]; ok {
		return n
	}
	return len(strings.Fields(text))
}

func tagged(source, chunk string) string {
	return fmt.Sprintf("[Source: %s]\n%s", source, chunk)
}

func TestSelectTokenBudget(t *testing.T) {
	corpus := &fakeCorpus{
		paths: []string{"/corpus/doc.txt"},
		texts: map[string]string{
			"/corpus/doc.txt": "alpha one\n\nalpha two\n\nalpha three",
		},
	}
	counter := &stubCounter{counts: map[string]int{
		tagged("doc.txt", "alpha one"):   3,
		tagged("doc.txt", "alpha two"):   4,
		tagged("doc.txt", "alpha three"): 5,
	}}
	selector := NewContextSelector(corpus, counter)

	t.Run("running total may land exactly on the budget", func(t *testing.T) {
		result, err := selector.Select(context.Background(), "alpha", 7)
		require.NoError(t, err)

		// 3+4 = 7 fits, the third chunk would overflow and is dropped
		expected := tagged("doc.txt", "alpha one") + "\n\n" + tagged("doc.txt", "alpha two")
		assert.Equal(t, expected, result)
	})

	t.Run("first chunk alone over budget yields empty context", func(t *testing.T) {
		result, err := selector.Select(context.Background(), "alpha", 2)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestSelectMultiDocumentAggregation(t *testing.T) {
	corpus := &fakeCorpus{
		paths: []string{"/corpus/first.pdf", "/corpus/second.pdf"},
		texts: map[string]string{
			"/corpus/first.pdf":  "cats are mammals\n\nunrelated paragraph about rocks",
			"/corpus/second.pdf": "all about cats and their habits",
		},
	}
	selector := NewContextSelector(corpus, &stubCounter{})

	result, err := selector.Select(context.Background(), "cats", 1000)
	require.NoError(t, err)

	assert.Contains(t, result, "[Source: first.pdf]\ncats are mammals")
	assert.Contains(t, result, "[Source: second.pdf]\nall about cats and their habits")
	assert.NotContains(t, result, "rocks")

	// Document order is scan order, not relevance order.
	assert.Less(t, strings.Index(result, "first.pdf"), strings.Index(result, "second.pdf"))
}

func TestSelectSubstringContainment(t *testing.T) {
	corpus := &fakeCorpus{
		paths: []string{"/corpus/doc.txt"},
		texts: map[string]string{
			"/corpus/doc.txt": "this paragraph mentions a category of things",
		},
	}
	selector := NewContextSelector(corpus, &stubCounter{})

	// Raw substring match: "cat" matches inside "category".
	result, err := selector.Select(context.Background(), "cat", 1000)
	require.NoError(t, err)
	assert.Contains(t, result, "category")
}

func TestSelectAccentedKeywords(t *testing.T) {
	corpus := &fakeCorpus{
		paths: []string{"/corpus/doc.txt"},
		texts: map[string]string{
			"/corpus/doc.txt": "la segurança dos dados é importante",
		},
	}
	selector := NewContextSelector(corpus, &stubCounter{})

	// Accented words are real keywords, not punctuation to discard.
	result, err := selector.Select(context.Background(), "¿qué es segurança?", 1000)
	require.NoError(t, err)
	assert.Contains(t, result, "segurança")
}

func TestSelectNoRelevantChunks(t *testing.T) {
	corpus := &fakeCorpus{
		paths: []string{"/corpus/doc.txt"},
		texts: map[string]string{
			"/corpus/doc.txt": "nothing in here matches",
		},
	}
	selector := NewContextSelector(corpus, &stubCounter{})

	result, err := selector.Select(context.Background(), "zebra", 1000)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSelectEmptyCorpus(t *testing.T) {
	selector := NewContextSelector(&fakeCorpus{}, &stubCounter{})

	result, err := selector.Select(context.Background(), "anything", 1000)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSelectSkipsEmptyDocuments(t *testing.T) {
	// A document whose extraction failed is cached as "" and contributes
	// nothing; the remaining documents still get processed.
	corpus := &fakeCorpus{
		paths: []string{"/corpus/broken.pdf", "/corpus/good.txt"},
		texts: map[string]string{
			"/corpus/broken.pdf": "",
			"/corpus/good.txt":   "facts about zebras",
		},
	}
	selector := NewContextSelector(corpus, &stubCounter{})

	result, err := selector.Select(context.Background(), "zebras", 1000)
	require.NoError(t, err)
	assert.Equal(t, tagged("good.txt", "facts about zebras"), result)
}

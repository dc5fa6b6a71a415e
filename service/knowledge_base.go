package service

import (
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tranvd/askbot-be/utils"
)

// KnowledgeBase scans a directory of corpus documents and serves their
// extracted text from an in-memory cache. The cache is filled on first
// access and lives for the process lifetime; the corpus is assumed static.
type KnowledgeBase struct {
	corpusDir string

	mu        sync.RWMutex
	textCache map[string]string
}

func NewKnowledgeBase(corpusDir string) *KnowledgeBase {
	if info, err := os.Stat(corpusDir); err != nil || !info.IsDir() {
		log.Printf("invalid corpus directory: %s", corpusDir)
	} else {
		log.Printf("knowledge base initialized with directory: %s", corpusDir)
	}
	return &KnowledgeBase{
		corpusDir: corpusDir,
		textCache: make(map[string]string),
	}
}

// Scan lists corpus files in directory order. A missing or unreadable
// directory is logged and yields an empty list, never an error.
func (kb *KnowledgeBase) Scan(ctx context.Context) []string {
	entries, err := os.ReadDir(kb.corpusDir)
	if err != nil {
		log.Printf("cannot scan corpus directory %s: %v%s", kb.corpusDir, err, logTag(ctx))
		return nil
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() || !utils.IsCorpusFile(entry.Name()) {
			continue
		}
		docs = append(docs, filepath.Join(kb.corpusDir, entry.Name()))
	}
	log.Printf("found %d corpus files in %s%s", len(docs), kb.corpusDir, logTag(ctx))
	return docs
}

// ExtractText returns the full text of a document, extracting it on first
// access. Extraction failures are logged and cached as an empty string so
// a broken document becomes inert instead of being retried per request.
func (kb *KnowledgeBase) ExtractText(ctx context.Context, path string) string {
	kb.mu.RLock()
	text, ok := kb.textCache[path]
	kb.mu.RUnlock()
	if ok {
		return text
	}

	// Concurrent first reads of the same document may both extract; the
	// value is idempotent so the duplicate work is harmless.
	extracted, err := kb.extract(ctx, path)
	if err != nil {
		log.Printf("error extracting text from %s: %v%s", path, err, logTag(ctx))
		extracted = ""
	} else {
		log.Printf("extracted text from %s%s", path, logTag(ctx))
	}

	kb.mu.Lock()
	kb.textCache[path] = extracted
	kb.mu.Unlock()
	return extracted
}

func (kb *KnowledgeBase) extract(ctx context.Context, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDFText(ctx, path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// extractPDFText shells out to pdftotext, writing to stdout.
func extractPDFText(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, "pdftotext", path, "-")
	var out strings.Builder
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return out.String(), nil
}

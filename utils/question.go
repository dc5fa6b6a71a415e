package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Unicode classes, not \w: Go's \w is ASCII-only and would strip accented
// and non-Latin letters as if they were punctuation.
var (
	punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// NormalizeQuestion lowercases the question, strips punctuation and
// collapses whitespace so that trivial variations of the same question
// share one cache key.
func NormalizeQuestion(question string) string {
	normalized := strings.ToLower(question)
	normalized = punctuationRe.ReplaceAllString(normalized, "")
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// Fingerprint hashes a normalized question into the fixed-length key used
// for cache lookups and as the correlation id in logs.
func Fingerprint(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// QuestionFingerprint is the normalize-then-hash shorthand.
func QuestionFingerprint(question string) string {
	return Fingerprint(NormalizeQuestion(question))
}

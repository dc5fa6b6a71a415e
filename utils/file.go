package utils

import (
	"path/filepath"
	"strings"
)

var corpusExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
	".md":  true,
}

// IsCorpusFile reports whether the file name carries an extension the
// knowledge base knows how to extract text from.
func IsCorpusFile(name string) bool {
	return corpusExtensions[strings.ToLower(filepath.Ext(name))]
}

// DisplayName returns the name a document is shown under in source tags.
func DisplayName(path string) string {
	return filepath.Base(path)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorpusFile(t *testing.T) {
	assert.True(t, IsCorpusFile("manual.pdf"))
	assert.True(t, IsCorpusFile("NOTES.TXT"))
	assert.True(t, IsCorpusFile("readme.md"))
	assert.False(t, IsCorpusFile("archive.zip"))
	assert.False(t, IsCorpusFile("noextension"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "manual.pdf", DisplayName("/data/corpus/manual.pdf"))
	assert.Equal(t, "notes.txt", DisplayName("notes.txt"))
}

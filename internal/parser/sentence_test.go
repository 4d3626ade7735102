package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSentences(t *testing.T) {
	text := "<document>\n" +
		"<Sentence id=\"1\">\n1\tRam\tNNP\n</Sentence>\n" +
		"junk between\n" +
		"<Sentence id='2' lang=\"hin\">\n1\tgoes\tVB\n2\thome\tNN\n</Sentence>\n" +
		"</document>"

	blocks := ExtractSentences(text)
	require.Len(t, blocks, 2)

	assert.Equal(t, "1", blocks[0].ID)
	assert.Equal(t, "<Sentence id=\"1\">", blocks[0].Header)
	assert.Equal(t, "\n1\tRam\tNNP\n", blocks[0].Body)
	assert.Equal(t, "</Sentence>", blocks[0].Footer)

	assert.Equal(t, "2", blocks[1].ID)
	assert.Equal(t, "\n1\tgoes\tVB\n2\thome\tNN\n", blocks[1].Body)
}

func TestExtractSentencesNonGreedy(t *testing.T) {
	text := "<Sentence id=\"a\">x</Sentence><Sentence id=\"b\">y</Sentence>"

	blocks := ExtractSentences(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, "x", blocks[0].Body)
	assert.Equal(t, "y", blocks[1].Body)
}

func TestExtractSentencesNoMarkers(t *testing.T) {
	assert.Empty(t, ExtractSentences("1\tRam\tNNP\n"))
	assert.Empty(t, ExtractSentences(""))
	assert.Empty(t, ExtractSentences("<Sentences id=\"1\">x</Sentences>"))
}

func TestExtractSentencesWithoutID(t *testing.T) {
	blocks := ExtractSentences("<Sentence>\n1\tRam\tNNP\n</Sentence>")
	require.Len(t, blocks, 1)
	assert.Equal(t, "", blocks[0].ID)
}

package parser

import (
	"regexp"
)

// SentenceBlock is one <Sentence ...> ... </Sentence> region of a document
type SentenceBlock struct {
	ID     string // value of the id attribute, empty if absent
	Header string // opening marker as written
	Body   string // raw text between the markers
	Footer string // closing marker
}

var (
	sentenceRegex = regexp.MustCompile(`(?s)(<Sentence\b[^>]*>)(.*?)(</Sentence>)`)
	sentenceIDRe  = regexp.MustCompile(`\bid\s*=\s*["']?([^"'\s>]*)`)
)

// ExtractSentences returns the sentence blocks of text in document order.
// Text without sentence markers yields no blocks.
func ExtractSentences(text string) []SentenceBlock {
	matches := sentenceRegex.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]SentenceBlock, 0, len(matches))
	for _, m := range matches {
		block := SentenceBlock{
			Header: m[1],
			Body:   m[2],
			Footer: m[3],
		}
		if id := sentenceIDRe.FindStringSubmatch(m[1]); id != nil {
			block.ID = id[1]
		}
		blocks = append(blocks, block)
	}
	return blocks
}

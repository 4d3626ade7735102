// Package conll serializes tagged sentences as CoNLL text: one
// "token<TAB>tag" pair per line and a blank line after every sentence.
package conll

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gubarz/ssfner/internal/parser"
)

// FormatSentence renders one sentence block, newline terminated
func FormatSentence(s parser.TaggedSentence) string {
	var b strings.Builder
	for _, tok := range s.Tokens {
		b.WriteString(tok.Text)
		b.WriteByte('\t')
		b.WriteString(tok.Tag)
		b.WriteByte('\n')
	}
	return b.String()
}

// Blocks renders every sentence of a document
func Blocks(doc *parser.Document) []string {
	blocks := make([]string, 0, len(doc.Sentences))
	for _, s := range doc.Sentences {
		blocks = append(blocks, FormatSentence(s))
	}
	return blocks
}

// FormatDocument joins the sentence blocks of a document. A document
// without sentences renders as a single newline.
func FormatDocument(doc *parser.Document) string {
	return joinLines(Blocks(doc))
}

// FormatMerged concatenates several documents into one text
func FormatMerged(docs []*parser.Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, FormatDocument(doc))
	}
	return joinLines(parts)
}

// WriteFile writes text to path, creating the parent directory
func WriteFile(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNoInput is returned when no input path was given
var ErrNoInput = errors.New("no input path")

// Document is the tagged content of one SSF file
type Document struct {
	Path      string           // Source file path
	Sentences []TaggedSentence // Sentences that produced at least one token
	Blocks    int              // Number of sentence blocks found, including empty ones
}

// Name returns the base name of the source file
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// CorpusIndex holds all parsed documents in processing order
type CorpusIndex struct {
	Documents []*Document
}

// NewCorpusIndex creates an empty corpus index
func NewCorpusIndex() *CorpusIndex {
	return &CorpusIndex{
		Documents: make([]*Document, 0),
	}
}

// Parser reads SSF files and tags their sentences
type Parser struct {
	index      *CorpusIndex
	tagger     *Tagger
	logger     *zap.Logger
	skipHidden bool
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for skipped lines and progress
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithAppendOrphans toggles gluing of '='-less feature tokens onto ne
func WithAppendOrphans(on bool) Option {
	return func(p *Parser) {
		p.tagger.Features.AppendOrphans = on
	}
}

// WithHiddenFiles makes ParseDirectory include dotfiles
func WithHiddenFiles() Option {
	return func(p *Parser) {
		p.skipHidden = false
	}
}

// NewParser creates a new parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		index:      NewCorpusIndex(),
		tagger:     NewTagger(nil),
		logger:     zap.NewNop(),
		skipHidden: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.tagger.Logger = p.logger
	return p
}

// Index returns everything parsed so far
func (p *Parser) Index() *CorpusIndex {
	return p.index
}

// ListDirectory returns the regular files directly inside dir, sorted by
// name. Sub-directories are not descended into.
func (p *Parser) ListDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if p.skipHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// ParseDirectory parses every file directly inside dir
func (p *Parser) ParseDirectory(dir string) (*CorpusIndex, error) {
	paths, err := p.ListDirectory(dir)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, err := p.parseFile(path); err != nil {
			return nil, err
		}
	}
	return p.index, nil
}

// ParseSingleFile parses a single SSF file
func (p *Parser) ParseSingleFile(path string) (*CorpusIndex, error) {
	if _, err := p.parseFile(path); err != nil {
		return nil, err
	}
	return p.index, nil
}

// ParseFile parses one file and returns its document without touching the
// index. It is safe to call from several goroutines.
func (p *Parser) ParseFile(path string) (*Document, error) {
	if path == "" {
		return nil, ErrNoInput
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := p.ParseText(string(content))
	doc.Path = path

	p.logger.Debug("parsed file",
		zap.String("path", path),
		zap.Int("blocks", doc.Blocks),
		zap.Int("sentences", len(doc.Sentences)))
	return doc, nil
}

// ParseText tags every sentence of an SSF text
func (p *Parser) ParseText(text string) *Document {
	blocks := ExtractSentences(strings.TrimSpace(text))

	doc := &Document{Blocks: len(blocks)}
	for _, block := range blocks {
		sentence := p.tagger.TagSentence(block)
		if len(sentence.Tokens) == 0 {
			continue
		}
		doc.Sentences = append(doc.Sentences, sentence)
	}
	return doc
}

func (p *Parser) parseFile(path string) (*Document, error) {
	doc, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	p.index.Documents = append(p.index.Documents, doc)
	return doc, nil
}

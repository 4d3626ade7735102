package parser

import (
	"strings"

	"go.uber.org/zap"
)

// EntityType is the BIO position of the entity currently being tagged
type EntityType string

const (
	EntityNone   EntityType = ""
	EntityBegin  EntityType = "B"
	EntityInside EntityType = "I"
)

// OutsideTag is emitted for tokens outside any entity
const OutsideTag = "O"

// EntityState is the per-sentence scanning state. The zero value is the
// initial state.
type EntityState struct {
	Type EntityType
	Tag  string
}

// Reset returns the state to its initial value
func (s *EntityState) Reset() {
	*s = EntityState{}
}

// Open starts a new entity span with the given label
func (s *EntityState) Open(tag string) {
	s.Type = EntityBegin
	s.Tag = tag
}

// Next returns the tag for the current nested token and advances Begin to
// Inside.
func (s *EntityState) Next() string {
	if s.Type == EntityNone || s.Tag == "" {
		return OutsideTag
	}
	tag := string(s.Type) + "-" + s.Tag
	if s.Type == EntityBegin {
		s.Type = EntityInside
	}
	return tag
}

// TaggedToken is one output pair
type TaggedToken struct {
	Text string
	Tag  string
}

// String renders the token as a CoNLL line
func (t TaggedToken) String() string {
	return t.Text + "\t" + t.Tag
}

// TaggedSentence holds the tokens derived from one sentence block
type TaggedSentence struct {
	ID     string
	Tokens []TaggedToken
}

// Tagger derives BIO tags from the lines of a sentence block
type Tagger struct {
	Features FeatureParser
	Logger   *zap.Logger
}

// NewTagger creates a tagger that appends orphan feature tokens to ne
func NewTagger(logger *zap.Logger) *Tagger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tagger{
		Features: FeatureParser{AppendOrphans: true},
		Logger:   logger,
	}
}

// Tag walks the block body line by line and returns one tagged token per
// leaf line. Unrecognised lines are logged and skipped.
func (t *Tagger) Tag(block SentenceBlock) []TaggedToken {
	var (
		tokens []TaggedToken
		state  EntityState
	)

	features := t.Features
	if features.OnOrphan == nil {
		features.OnOrphan = func(token string) {
			t.logger().Debug("ignoring feature token without '='",
				zap.String("sentence", block.ID),
				zap.String("token", token))
		}
	}

	for _, raw := range strings.Split(block.Body, "\n") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		line := ClassifyLine(text)
		switch line.Kind {
		case LineChunkClose:
			state.Reset()
		case LineRoot:
			continue
		case LineLeafPlain:
			tokens = append(tokens, TaggedToken{Text: line.Token(), Tag: OutsideTag})
		case LineLeafNested:
			tokens = append(tokens, TaggedToken{Text: line.Token(), Tag: state.Next()})
		case LineChunkOpenWithFeature:
			fs := features.Parse(line.Feature())
			if ne, ok := fs.NE(); ok {
				state.Open(ne)
			}
		default:
			t.logger().Debug("skipping unrecognised line",
				zap.String("sentence", block.ID),
				zap.String("line", text))
		}
	}

	return tokens
}

// TagSentence tags a block and keeps its id
func (t *Tagger) TagSentence(block SentenceBlock) TaggedSentence {
	return TaggedSentence{ID: block.ID, Tokens: t.Tag(block)}
}

func (t *Tagger) logger() *zap.Logger {
	if t.Logger == nil {
		return zap.NewNop()
	}
	return t.Logger
}

package stats

import (
	"sort"
	"strings"

	"github.com/gubarz/ssfner/internal/parser"
)

// Summary holds counts over a corpus
type Summary struct {
	Files     int
	Blocks    int // sentence blocks found
	Sentences int // sentence blocks that produced tokens
	Tokens    int
	Outside   int            // tokens tagged O
	Entities  map[string]int // entity spans per label
}

// EntityCount is one row of the per-label breakdown
type EntityCount struct {
	Label string
	Spans int
}

// Handler accumulates a Summary
type Handler struct {
	stats Summary
}

// NewHandler creates an empty handler
func NewHandler() *Handler {
	return &Handler{
		stats: Summary{Entities: map[string]int{}},
	}
}

// Get returns the accumulated summary
func (h *Handler) Get() Summary {
	return h.stats
}

// Aggregate adds one document to the summary
func (h *Handler) Aggregate(doc *parser.Document) {
	h.stats.Files++
	h.stats.Blocks += doc.Blocks
	h.stats.Sentences += len(doc.Sentences)

	for _, s := range doc.Sentences {
		h.stats.Tokens += len(s.Tokens)
		for _, tok := range s.Tokens {
			if tok.Tag == parser.OutsideTag {
				h.stats.Outside++
				continue
			}
			// every span starts with exactly one B- tag
			if label, ok := strings.CutPrefix(tok.Tag, string(parser.EntityBegin)+"-"); ok {
				h.stats.Entities[label]++
			}
		}
	}
}

// Aggregate summarizes a whole corpus index
func Aggregate(index *parser.CorpusIndex) Summary {
	h := NewHandler()
	for _, doc := range index.Documents {
		h.Aggregate(doc)
	}
	return h.Get()
}

// ByLabel returns entity counts sorted by descending spans, then label
func (s Summary) ByLabel() []EntityCount {
	counts := make([]EntityCount, 0, len(s.Entities))
	for label, n := range s.Entities {
		counts = append(counts, EntityCount{Label: label, Spans: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Spans != counts[j].Spans {
			return counts[i].Spans > counts[j].Spans
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}

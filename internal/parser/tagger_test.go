package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func block(lines ...string) SentenceBlock {
	return SentenceBlock{ID: "1", Body: "\n" + strings.Join(lines, "\n") + "\n"}
}

func TestTaggerTag(t *testing.T) {
	tests := []struct {
		name     string
		block    SentenceBlock
		expected []TaggedToken
	}{
		{
			name: "plain leaves are outside",
			block: block(
				"1\tRam\tNNP",
				"2\tgoes",
				"3\thome\tNN",
			),
			expected: []TaggedToken{
				{"Ram", "O"},
				{"goes", "O"},
				{"home", "O"},
			},
		},
		{
			name: "begin then inside",
			block: block(
				"1\t((\tNP\t<fs ne='PERSON'>",
				"1.1\tSachin\tNNP",
				"1.2\tTendulkar\tNNP",
				"))",
			),
			expected: []TaggedToken{
				{"Sachin", "B-PERSON"},
				{"Tendulkar", "I-PERSON"},
			},
		},
		{
			name: "end to end",
			block: block(
				"1\t((\tNP\t<fs ne='ORG'>",
				"1.1\tAcme\tNNP",
				"1.2\tCorp\tNNP",
				"))",
				"2\tannounced\tVBD",
			),
			expected: []TaggedToken{
				{"Acme", "B-ORG"},
				{"Corp", "I-ORG"},
				{"announced", "O"},
			},
		},
		{
			name: "chunk close resets state",
			block: block(
				"1\t((\tNP\t<fs ne='LOC'>",
				"))",
				"2\tDelhi\tNNP",
				"2.1\tnested\tNN",
			),
			expected: []TaggedToken{
				{"Delhi", "O"},
				{"nested", "O"},
			},
		},
		{
			name: "nested token without entity is outside",
			block: block(
				"1\t((\tNP\t<fs af='x'>",
				"1.1\tthe\tDT",
				"1.2\tdog",
				"))",
			),
			expected: []TaggedToken{
				{"the", "O"},
				{"dog", "O"},
			},
		},
		{
			name: "two field nested tokens",
			block: block(
				"1\t((\tNP\t<fs ne='PERSON'>",
				"1.1\tSachin",
				"1.2\tRamesh",
				"1.3\tTendulkar",
				"))",
			),
			expected: []TaggedToken{
				{"Sachin", "B-PERSON"},
				{"Ramesh", "I-PERSON"},
				{"Tendulkar", "I-PERSON"},
			},
		},
		{
			name: "fresh ne starts a new span",
			block: block(
				"1\t((\tNP\t<fs ne='PERSON'>",
				"1.1\tA\tNNP",
				"1.2\t((\tNP\t<fs ne='ORG'>",
				"1.3\tB\tNNP",
				"1.4\tC\tNNP",
				"))",
			),
			expected: []TaggedToken{
				{"A", "B-PERSON"},
				{"B", "B-ORG"},
				{"C", "I-ORG"},
			},
		},
		{
			name: "root line and blanks skipped",
			block: block(
				"0\t((\tSSF",
				"",
				"   ",
				"1\tword\tNN",
				"\t))\t",
			),
			expected: []TaggedToken{
				{"word", "O"},
			},
		},
		{
			name: "stray feature flag does not leak into the label",
			block: block(
				"1\t((\tNP\t<fs ne='ORG' af='x' stray>",
				"1.1\tAcme\tNNP",
				"))",
			),
			expected: []TaggedToken{
				{"Acme", "B-ORG"},
			},
		},
		{
			name: "empty ne value stays outside",
			block: block(
				"1\t((\tNP\t<fs ne=''>",
				"1.1\tx\tNN",
				"))",
			),
			expected: []TaggedToken{
				{"x", "O"},
			},
		},
	}

	tagger := NewTagger(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tagger.Tag(tt.block)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tag() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTaggerEmptySentence(t *testing.T) {
	tagger := NewTagger(nil)
	assert.Empty(t, tagger.Tag(block("0\t((\tSSF", "))")))
}

func TestTaggerLogsSkippedLines(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tagger := NewTagger(zap.New(core))

	got := tagger.Tag(block(
		"x\tbad\tNN",
		"1\t((\tNP\t<fs stray ne='ORG'>",
		"1.1\tAcme\tNNP",
	))

	require.Len(t, got, 1)
	assert.Equal(t, "B-ORG", got[0].Tag)

	skipped := logs.FilterMessage("skipping unrecognised line").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "x\tbad\tNN", skipped[0].ContextMap()["line"])

	assert.Equal(t, 1, logs.FilterMessage("ignoring feature token without '='").Len())
}

func TestEntityStateTransitions(t *testing.T) {
	var s EntityState
	assert.Equal(t, OutsideTag, s.Next())

	s.Open("PERSON")
	assert.Equal(t, "B-PERSON", s.Next())
	assert.Equal(t, EntityInside, s.Type)
	assert.Equal(t, "I-PERSON", s.Next())
	assert.Equal(t, "I-PERSON", s.Next())

	s.Reset()
	assert.Equal(t, EntityState{}, s)
	assert.Equal(t, OutsideTag, s.Next())
}

func TestTaggedTokenString(t *testing.T) {
	assert.Equal(t, "Acme\tB-ORG", TaggedToken{Text: "Acme", Tag: "B-ORG"}.String())
}

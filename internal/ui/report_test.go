package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gubarz/ssfner/internal/stats"
)

func TestRenderSummaryPlain(t *testing.T) {
	out := RenderSummaryPlain(stats.Summary{
		Files:     2,
		Blocks:    3,
		Sentences: 2,
		Tokens:    5,
		Outside:   1,
		Entities:  map[string]int{"ORG": 1, "PERSON": 2},
	})

	assert.Contains(t, out, "SSF corpus summary")
	assert.Contains(t, out, "tokens")
	assert.Contains(t, out, "entity spans")
	assert.Less(t, strings.Index(out, "PERSON"), strings.Index(out, "ORG"), "labels sorted by span count")
}

func TestRenderSummaryWithoutEntities(t *testing.T) {
	out := RenderSummary(stats.Summary{Entities: map[string]int{}})
	assert.Contains(t, out, "no entity spans")
}

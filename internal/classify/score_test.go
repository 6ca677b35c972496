package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = []Rule{
	{Name: "First", Keywords: []string{"alpha", "beta", "gamma"}},
	{Name: "Second", Keywords: []string{"delta", "epsilon"}},
}

func TestScoreCountsEachKeywordOnce(t *testing.T) {
	scores := Score("alpha alpha alpha delta", testRules)
	assert.Equal(t, 1, scores["First"], "repeated occurrences count once")
	assert.Equal(t, 1, scores["Second"])
}

func TestScoreNormalizesInput(t *testing.T) {
	scores := Score("ALPHA-beta!!gamma", testRules)
	assert.Equal(t, 3, scores["First"])
	assert.Equal(t, 0, scores["Second"])
}

func TestBestPicksHighestScore(t *testing.T) {
	scores := Score("alpha beta gamma epsilon", testRules)
	best, ok := Best(scores, testRules)
	require.True(t, ok)
	assert.Equal(t, "First", best)
}

func TestBestZeroIsNotASignal(t *testing.T) {
	scores := Score("nothing matches here at all", testRules)
	_, ok := Best(scores, testRules)
	assert.False(t, ok)
}

func TestBestTieBreaksByDeclarationOrder(t *testing.T) {
	// One keyword from each category: the earlier declared entry wins.
	scores := Score("alpha delta", testRules)
	best, ok := Best(scores, testRules)
	require.True(t, ok)
	assert.Equal(t, "First", best)

	// Same tie against the real table.
	realScores := Score("registrar abstract", Rules)
	require.Equal(t, 1, realScores["University Docs"])
	require.Equal(t, 1, realScores["Capstone Work"])
	best, ok = Best(realScores, Rules)
	require.True(t, ok)
	assert.Equal(t, "University Docs", best)
}

func TestTableInvariants(t *testing.T) {
	require.NotEmpty(t, Rules)
	for _, r := range Rules {
		assert.NotEmpty(t, r.Keywords, "category %s must have keywords", r.Name)
	}
	assert.Equal(t, Rules[len(Rules)-1].Name, Fallback())
	assert.Equal(t, "Technical Work", Fallback())
	assert.Equal(t, len(Rules), len(Categories()))
}

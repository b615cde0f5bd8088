package gitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/ideagraph/internal/layout"
)

func TestFirstParentChainWalksFirstParentsOnly(t *testing.T) {
	commits := []layout.Commit{
		{ID: "a", Parents: []layout.CommitID{"b", "s"}},
		{ID: "s", Parents: []layout.CommitID{"b"}},
		{ID: "b", Parents: []layout.CommitID{"c"}},
		{ID: "c", Parents: nil},
	}

	chain := FirstParentChain(commits, "a")

	assert.True(t, chain["a"])
	assert.True(t, chain["b"])
	assert.True(t, chain["c"])
	assert.False(t, chain["s"], "s is a merge source, never a first parent")
}

func TestFirstParentChainStopsAtUnknownOrMissingHead(t *testing.T) {
	commits := []layout.Commit{{ID: "a", Parents: []layout.CommitID{"ghost"}}}

	chain := FirstParentChain(commits, "a")
	assert.True(t, chain["a"])
	assert.Len(t, chain, 1)

	assert.Empty(t, FirstParentChain(commits, "missing"))
}

func TestFirstParentChainStopsOnCycle(t *testing.T) {
	commits := []layout.Commit{
		{ID: "a", Parents: []layout.CommitID{"b"}},
		{ID: "b", Parents: []layout.CommitID{"a"}},
	}

	chain := FirstParentChain(commits, "a")
	assert.True(t, chain["a"])
	assert.True(t, chain["b"])
	assert.Len(t, chain, 2)
}

package gitlog

import "github.com/yourusername/ideagraph/internal/layout"

// FirstParentChain walks first-parent links from head and returns the set
// of commit identities reachable that way. The layout engine's Layout takes
// a main_chain membership set rather than computing one itself — §9's
// "main-chain computation" decision keeps that policy a caller concern, so
// a caller that wants a different notion of "main" (e.g. a configured
// branch instead of HEAD) can supply its own set instead.
func FirstParentChain(commits []layout.Commit, head layout.CommitID) map[layout.CommitID]bool {
	byID := make(map[layout.CommitID]layout.Commit, len(commits))
	for _, c := range commits {
		byID[c.ID] = c
	}

	chain := make(map[layout.CommitID]bool)
	cur := head
	for {
		c, ok := byID[cur]
		if !ok || chain[cur] {
			break
		}
		chain[cur] = true
		if len(c.Parents) == 0 {
			break
		}
		cur = c.Parents[0]
	}
	return chain
}

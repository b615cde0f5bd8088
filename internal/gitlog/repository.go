// Package gitlog adapts a git repository on disk into the ordered
// layout.Commit slice the layout engine consumes. It knows nothing about
// columns, colors, or segments — its only job is turning `git log` output
// into identities, parent lists, and display metadata.
package gitlog

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog"

	"github.com/yourusername/ideagraph/internal/layout"
)

// UncommittedHash is the sentinel identity for the synthetic "Uncommitted
// changes" row prepended ahead of HEAD when the working tree is dirty.
const UncommittedHash = "0000000000000000000000000000000000000000"

// UncommittedShortHash is the ShortHash carried in that row's Meta.
const UncommittedShortHash = "·······"

// RefType distinguishes a branch/remote-tracking ref from a tag.
type RefType int

const (
	RefTypeBranch RefType = iota
	RefTypeTag
)

// Ref is one ref pointing at a commit.
type Ref struct {
	Name     string
	RefType  RefType
	IsHead   bool
	IsRemote bool
}

// Meta is the display payload an ingested commit carries in its
// layout.Commit.Meta field. The layout engine never reads it; callers type
// assert it back out after Layout returns.
type Meta struct {
	Hash      string
	ShortHash string
	Author    string
	Email     string
	Date      time.Time
	Subject   string
	Refs      []Ref
}

// Branch is one local branch ref.
type Branch struct {
	Name      string
	IsHead    bool
	IsCurrent bool
	Hash      string
}

// Repository wraps a go-git handle plus the repository's filesystem path,
// which shelling out to `git log` needs (go-git's own Log walk does not
// preserve the --all --topo-order ordering a graph rendering needs).
type Repository struct {
	repo *git.Repository
	path string
	log  zerolog.Logger
}

// OpenRepository opens the repository rooted at path.
func OpenRepository(path string, log zerolog.Logger) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("gitlog: open %s: %w", path, err)
	}
	return &Repository{repo: repo, path: path, log: log.With().Str("component", "gitlog").Logger()}, nil
}

// Path returns the repository root.
func (r *Repository) Path() string {
	return r.path
}

// GetCommits runs `git log --all --topo-order` and returns up to limit
// commits as layout.Commit rows, newest first, each carrying a *Meta in its
// Meta field. The NUL byte (\x00) delimits fields in the format string
// because it cannot appear in any commit metadata git will hand back.
func (r *Repository) GetCommits(limit int) ([]layout.Commit, error) {
	refMap := r.buildRefMap()

	format := "%H%x00%P%x00%an%x00%ae%x00%at%x00%s"
	args := []string{
		"-C", r.path,
		"log", "--all", "--topo-order",
		fmt.Sprintf("--format=%s", format),
		fmt.Sprintf("-%d", limit),
	}

	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gitlog: git log: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	commits := make([]layout.Commit, 0, len(lines))

	for _, line := range lines {
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "\x00", 6)
		if len(parts) < 6 {
			r.log.Debug().Str("line", line).Msg("skipping malformed git log line")
			continue
		}

		hash, parentStr, author, email, tsStr, subject := parts[0], parts[1], parts[2], parts[3], parts[4], parts[5]

		var parents []layout.CommitID
		if parentStr != "" {
			for _, p := range strings.Split(parentStr, " ") {
				parents = append(parents, layout.CommitID(p))
			}
		}

		ts, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			ts = 0
		}

		shortHash := hash
		if len(hash) >= 7 {
			shortHash = hash[:7]
		}

		commits = append(commits, layout.Commit{
			ID:      layout.CommitID(hash),
			Parents: parents,
			Meta: &Meta{
				Hash:      hash,
				ShortHash: shortHash,
				Author:    author,
				Email:     email,
				Date:      time.Unix(ts, 0),
				Subject:   subject,
				Refs:      refMap[hash],
			},
		})
	}

	r.log.Debug().Int("count", len(commits)).Msg("loaded commits")
	return commits, nil
}

func (r *Repository) buildRefMap() map[string][]Ref {
	refMap := make(map[string][]Ref)

	head, _ := r.repo.Head()
	headName := ""
	if head != nil {
		headName = head.Name().String()
	}

	refs, err := r.repo.References()
	if err != nil {
		return refMap
	}

	refs.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash().String()
		name := ref.Name()

		switch {
		case name.IsBranch():
			refMap[hash] = append(refMap[hash], Ref{
				Name:    name.Short(),
				RefType: RefTypeBranch,
				IsHead:  name.String() == headName,
			})
		case name.IsRemote():
			refMap[hash] = append(refMap[hash], Ref{
				Name:     name.Short(),
				RefType:  RefTypeBranch,
				IsRemote: true,
			})
		case name.IsTag():
			// An annotated tag's ref hash points at the tag object, not the
			// commit it marks — peel it so the ref lands on the right row.
			if tagObj, err := r.repo.TagObject(ref.Hash()); err == nil {
				hash = tagObj.Target.String()
			}
			refMap[hash] = append(refMap[hash], Ref{
				Name:    name.Short(),
				RefType: RefTypeTag,
			})
		}
		return nil
	})

	return refMap
}

// GetBranches lists local branches, flagging which one HEAD points at.
func (r *Repository) GetBranches() ([]*Branch, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, err
	}

	refs, err := r.repo.References()
	if err != nil {
		return nil, err
	}

	var branches []*Branch
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsBranch() {
			return nil
		}
		isHead := ref.Name() == head.Name()
		branches = append(branches, &Branch{
			Name:      ref.Name().Short(),
			IsHead:    isHead,
			IsCurrent: isHead,
			Hash:      ref.Hash().String(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return branches, nil
}

// HasWorkingTreeChanges reports whether the working tree has uncommitted
// changes, used to decide whether to prepend the synthetic Uncommitted row.
func (r *Repository) HasWorkingTreeChanges() bool {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = r.path
	output, _ := cmd.Output()
	return len(strings.TrimSpace(string(output))) > 0
}

// WithUncommitted prepends the synthetic "Uncommitted changes" row ahead of
// HEAD when the working tree is dirty, parented on the current HEAD commit
// so it renders as a one-row bulge at the top of the graph rather than a
// disconnected head.
func (r *Repository) WithUncommitted(commits []layout.Commit) []layout.Commit {
	if len(commits) == 0 || !r.HasWorkingTreeChanges() {
		return commits
	}

	head, err := r.repo.Head()
	if err != nil {
		return commits
	}

	synthetic := layout.Commit{
		ID:      UncommittedHash,
		Parents: []layout.CommitID{layout.CommitID(head.Hash().String())},
		Meta: &Meta{
			Hash:      UncommittedHash,
			ShortHash: UncommittedShortHash,
			Subject:   "Uncommitted changes",
			Date:      time.Now(),
		},
	}

	out := make([]layout.Commit, 0, len(commits)+1)
	out = append(out, synthetic)
	out = append(out, commits...)
	return out
}

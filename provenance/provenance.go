package provenance

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/paramgrid/internal/ctxlog"
	"github.com/vk/paramgrid/params"
)

// Well-known mapping keys written by the tagger. The tagger never
// overwrites either of them.
const (
	CommitKey = "commit"
	ScriptKey = "script"
)

// RevisionInfo is the result of querying a repository for its current
// state. The zero value means "not a repository".
type RevisionInfo struct {
	// ID is the opaque revision identifier. Meaningless when Found is false.
	ID string
	// Dirty reports uncommitted changes relative to the recorded snapshot.
	Dirty bool
	// Found distinguishes a real answer from "not a repository".
	Found bool
}

// String renders the revision for tagging: the bare identifier when clean,
// the identifier with a "_dirty" suffix otherwise, and the empty string when
// no repository was found.
func (r RevisionInfo) String() string {
	if !r.Found {
		return ""
	}
	if r.Dirty {
		return r.ID + "_dirty"
	}
	return r.ID
}

// Repository answers revision queries for a filesystem path. Query reports
// the zero RevisionInfo when path is not inside a repository; any returned
// error is treated by the tagger exactly like "not a repository".
type Repository interface {
	Query(ctx context.Context, path string) (RevisionInfo, error)
}

// TagRevision inserts the repository revision at path into the mapping
// under the "commit" key and returns the same mapping. Every failure mode
// degrades to a logged no-op:
//
//   - path is not a repository, or the query fails: mapping unchanged;
//   - the mapping already carries a "commit" entry: mapping unchanged;
//   - the repository is dirty: the revision is tagged with a "_dirty"
//     suffix and a warning is logged.
func TagRevision(ctx context.Context, m *params.Mapping, repo Repository, path string) *params.Mapping {
	logger := ctxlog.FromContext(ctx)

	info, err := repo.Query(ctx, path)
	if err != nil {
		logger.Warn("Revision query failed, skipping commit tag.", "path", path, "error", err)
		return m
	}
	if !info.Found {
		logger.Warn("Path is not a repository, skipping commit tag.", "path", path)
		return m
	}
	if m.Has(CommitKey) {
		logger.Warn("Mapping already carries a commit entry, keeping the existing one.", "key", CommitKey)
		return m
	}
	if info.Dirty {
		logger.Warn("Repository has uncommitted changes, tagging revision with dirty suffix.", "path", path, "revision", info.ID)
	}

	m.Set(CommitKey, params.Scalar(cty.StringVal(info.String())))
	return m
}

// TagRevisionAndSource runs TagRevision and then records the invoking
// script location under the "script" key, rendered relative to the
// repository path. A zero location skips the script tag entirely; an
// existing "script" entry is kept with a logged warning.
func TagRevisionAndSource(ctx context.Context, m *params.Mapping, repo Repository, path string, loc SourceLocation) *params.Mapping {
	m = TagRevision(ctx, m, repo, path)

	if loc.IsZero() {
		return m
	}
	if m.Has(ScriptKey) {
		ctxlog.FromContext(ctx).Warn("Mapping already carries a script entry, keeping the existing one.", "key", ScriptKey)
		return m
	}

	m.Set(ScriptKey, params.Scalar(cty.StringVal(loc.Rel(path).String())))
	return m
}

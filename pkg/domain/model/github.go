package model

import (
	"time"

	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

// RepoHandle identifies a repository that exists on GitHub.
type RepoHandle struct {
	Owner         string
	Name          string
	DefaultBranch types.BranchName
	HTMLURL       string

	// Reused is true when the repository pre-existed and the deployment is
	// updating it instead of creating it.
	Reused bool
}

func (x *RepoHandle) FullName() string {
	return x.Owner + "/" + x.Name
}

// InstallationAccessToken is a short-lived credential minted per deployment
// attempt. It is never cached across attempts and never logged in full.
type InstallationAccessToken struct {
	Token     types.InstallationToken
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// BranchHead is the current tip of a branch: the commit the ref points at and
// the root tree of that commit.
type BranchHead struct {
	Commit types.CommitSHA
	Tree   types.TreeSHA
}

// TreeEntry is one file in a tree to be created, referencing an already
// uploaded blob.
type TreeEntry struct {
	Path string
	Blob types.BlobSHA
}

package model

import "github.com/secmon-lab/atelier/pkg/domain/types"

type CleanupStatus string

const (
	// CleanupDone means the asset blob was removed along with its
	// manifest entry.
	CleanupDone CleanupStatus = "done"

	// CleanupSkipped means no repository path could be derived from the
	// asset URL, so removal was not attempted.
	CleanupSkipped CleanupStatus = "skipped"

	// CleanupFailed means the removal was attempted and failed. The blob
	// stays orphaned in the repository; the manifest is already updated.
	CleanupFailed CleanupStatus = "failed"
)

// CleanupResult reports the best-effort asset removal that follows a
// manifest delete. A failure here never fails the delete itself.
type CleanupResult struct {
	Status CleanupStatus `json:"status"`
	Path   string        `json:"path,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// DeleteResult separates the mandatory manifest update from the optional
// asset cleanup so that callers can assert on them independently.
type DeleteResult struct {
	Artwork Artwork       `json:"artwork"`
	Cleanup CleanupResult `json:"cleanup"`
}

// RepoDetails is the result of the repository metadata probe used to
// verify store access.
type RepoDetails struct {
	FullName      string           `json:"fullName"`
	Description   string           `json:"description,omitempty"`
	DefaultBranch types.BranchName `json:"defaultBranch"`
	Private       bool             `json:"private"`
	HTMLURL       string           `json:"htmlUrl"`
}

package model

import (
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/domain/types"
)

const (
	// AssetDir is the repository directory that uploaded images are
	// written to.
	AssetDir = "images"

	DefaultBranch types.BranchName = "main"

	// RawContentBaseURL is the public, cache-fronted mirror of repository
	// content. Anonymous gallery reads go through it, so the content
	// repository must be public.
	RawContentBaseURL = "https://raw.githubusercontent.com"
)

// RepoConfig identifies the GitHub repository used as the content store
// and the credential for writing to it.
type RepoConfig struct {
	Owner  string
	Repo   string
	Branch types.BranchName
	Token  types.GitHubToken `masq:"secret"`
}

func (x *RepoConfig) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrInvalidOption, "branch is empty")
	}
	return nil
}

// RawContentURL returns the public mirror URL of a repository-relative
// path.
func (x *RepoConfig) RawContentURL(contentPath string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", RawContentBaseURL, x.Owner, x.Repo, x.Branch, contentPath)
}

// AssetPath derives the repository-relative path of an asset from its
// public URL. It first strips the raw mirror prefix of this repository;
// failing that, it locates the asset directory segment in the URL and
// takes the remainder. Returns "" when no path can be derived, in which
// case asset cleanup is skipped.
func (x *RepoConfig) AssetPath(imageURL string) string {
	prefix := fmt.Sprintf("%s/%s/%s/%s/", RawContentBaseURL, x.Owner, x.Repo, x.Branch)
	if rest := strings.TrimPrefix(imageURL, prefix); rest != imageURL && rest != "" {
		return rest
	}

	marker := "/" + AssetDir + "/"
	if idx := strings.Index(imageURL, marker); idx >= 0 && idx+len(marker) < len(imageURL) {
		return AssetDir + "/" + imageURL[idx+len(marker):]
	}

	return ""
}

func (x RepoConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Owner", x.Owner),
		slog.String("Repo", x.Repo),
		slog.String("Branch", string(x.Branch)),
		slog.Int("Token.len", len(x.Token)),
	)
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// SanitizeFilename lowercases the base name and replaces anything outside
// [a-z0-9._-] with a hyphen.
func SanitizeFilename(name string) string {
	name = strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))
	name = unsafeFileChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}

// NewAssetPath builds a unique repository path for an uploaded file. The
// timestamp prefix makes collisions practically impossible under the
// single-writer assumption, so no overwrite protection is needed.
func NewAssetPath(filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d-%s", AssetDir, now.UnixMilli(), SanitizeFilename(filename))
}

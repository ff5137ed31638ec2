package ghstore

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

// Client accesses the content repository through the GitHub Contents API.
// Every read and write is pinned to the configured branch; an unscoped
// request can silently target the wrong ref.
type Client struct {
	gh  *github.Client
	cfg *model.RepoConfig
}

var _ interfaces.ContentStore = (*Client)(nil)

type config struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*config)

// WithBaseURL points the client at a different API endpoint. Used by tests.
func WithBaseURL(rawURL string) Option {
	return func(c *config) {
		c.baseURL = rawURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// New builds a store authenticated with a personal access token.
func New(cfg *model.RepoConfig, options ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	c := applyOptions(options)
	httpClient := c.httpClient
	if httpClient == nil {
		httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: string(cfg.Token)},
		))
	}

	return newClient(cfg, httpClient, c)
}

// NewWithApp builds a store authenticated as a GitHub App installation.
func NewWithApp(cfg *model.RepoConfig, appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport")
	}

	c := applyOptions(options)
	return newClient(cfg, &http.Client{Transport: itr}, c)
}

func applyOptions(options []Option) *config {
	c := &config{}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func newClient(cfg *model.RepoConfig, httpClient *http.Client, c *config) (*Client, error) {
	gh := github.NewClient(httpClient)
	if c.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(err, "invalid base URL", goerr.V("url", c.baseURL))
		}
		gh.BaseURL = u
		gh.UploadURL = u
	}

	return &Client{gh: gh, cfg: cfg}, nil
}

func (x *Client) GetContent(ctx context.Context, path string) (*interfaces.StoreContent, error) {
	opt := &github.RepositoryContentGetOptions{
		Ref: string(x.cfg.Branch),
	}

	// https://docs.github.com/en/rest/repos/contents?apiVersion=2022-11-28#get-repository-content
	fc, _, resp, err := x.gh.Repositories.GetContents(ctx, x.cfg.Owner, x.cfg.Repo, path, opt)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrNotFound, "content does not exist", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to get content", goerr.V("path", path))
	}
	if fc == nil {
		return nil, goerr.Wrap(types.ErrMalformedContent, "path is a directory, not a file", goerr.V("path", path))
	}

	// The API returns a base64-encoded blob wrapping UTF-8 text; GetContent
	// decodes in that order so non-ASCII characters round-trip.
	text, err := fc.GetContent()
	if err != nil {
		return nil, goerr.Wrap(types.ErrMalformedContent, "failed to decode content", goerr.V("path", path))
	}

	return &interfaces.StoreContent{
		Data: []byte(text),
		SHA:  fc.GetSHA(),
	}, nil
}

func (x *Client) PutContent(ctx context.Context, input *interfaces.PutContentInput) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		Content: input.Data,
		Branch:  github.String(string(x.cfg.Branch)),
	}

	var resp *github.Response
	var err error
	if input.SHA == "" {
		// Creating write: no version token to attach.
		_, resp, err = x.gh.Repositories.CreateFile(ctx, x.cfg.Owner, x.cfg.Repo, input.Path, opts)
	} else {
		opts.SHA = github.String(input.SHA)
		_, resp, err = x.gh.Repositories.UpdateFile(ctx, x.cfg.Owner, x.cfg.Repo, input.Path, opts)
	}
	if err != nil {
		if isConflict(resp) {
			return goerr.Wrap(types.ErrConflict, "content changed since it was read",
				goerr.V("path", input.Path),
				goerr.V("sha", input.SHA),
			)
		}
		return goerr.Wrap(err, "failed to put content", goerr.V("path", input.Path))
	}

	logging.From(ctx).Debug("put content",
		slog.String("path", input.Path),
		slog.Int("size", len(input.Data)),
		slog.Bool("create", input.SHA == ""),
	)

	return nil
}

func (x *Client) DeleteContent(ctx context.Context, input *interfaces.DeleteContentInput) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Message),
		SHA:     github.String(input.SHA),
		Branch:  github.String(string(x.cfg.Branch)),
	}

	_, resp, err := x.gh.Repositories.DeleteFile(ctx, x.cfg.Owner, x.cfg.Repo, input.Path, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return goerr.Wrap(types.ErrNotFound, "content does not exist", goerr.V("path", input.Path))
		}
		if isConflict(resp) {
			return goerr.Wrap(types.ErrConflict, "content changed since it was read",
				goerr.V("path", input.Path),
				goerr.V("sha", input.SHA),
			)
		}
		return goerr.Wrap(err, "failed to delete content", goerr.V("path", input.Path))
	}

	return nil
}

func (x *Client) GetRepository(ctx context.Context) (*model.RepoDetails, error) {
	repo, _, err := x.gh.Repositories.Get(ctx, x.cfg.Owner, x.cfg.Repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository metadata",
			goerr.V("owner", x.cfg.Owner),
			goerr.V("repo", x.cfg.Repo),
		)
	}

	return &model.RepoDetails{
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		DefaultBranch: types.BranchName(repo.GetDefaultBranch()),
		Private:       repo.GetPrivate(),
		HTMLURL:       repo.GetHTMLURL(),
	}, nil
}

// GitHub reports a stale SHA as 409, or 422 when the blob SHA does not
// match the latest file revision.
func isConflict(resp *github.Response) bool {
	if resp == nil {
		return false
	}
	return resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity
}

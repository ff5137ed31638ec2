package mirror

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
	"github.com/secmon-lab/atelier/pkg/utils/safe"
)

// Client reads repository content from the public raw mirror. No
// credential is required, but the mirror is cache-fronted: propagation of
// a fresh write can take several minutes, which is an accepted
// characteristic of this read path.
type Client struct {
	cfg        *model.RepoConfig
	baseURL    string
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ interfaces.MirrorSource = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the mirror endpoint. Used by tests.
func WithBaseURL(rawURL string) Option {
	return func(x *Client) {
		x.baseURL = rawURL
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(cfg *model.RepoConfig, options ...Option) *Client {
	client := &Client{
		cfg:        cfg,
		baseURL:    model.RawContentBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	// The cache-busting parameter defeats the CDN for readers that just
	// published; the clock comes from the context so tests can pin it.
	url := fmt.Sprintf("%s/%s/%s/%s/%s?t=%d",
		x.baseURL, x.cfg.Owner, x.cfg.Repo, x.cfg.Branch, path,
		logging.CtxTime(ctx).UnixMilli(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build mirror request", goerr.V("url", url))
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch from mirror", goerr.V("url", url))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, goerr.Wrap(types.ErrNotFound, "content is not on the mirror", goerr.V("path", path))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected mirror response",
			goerr.V("status", resp.StatusCode),
			goerr.V("path", path),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read mirror response", goerr.V("path", path))
	}

	return body, nil
}

package infra

import (
	"net/http"

	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
)

type Clients struct {
	contentStore interfaces.ContentStore
	storeFactory interfaces.ContentStoreFactory
	mirror       interfaces.MirrorSource
	describer    interfaces.Describer
	settings     interfaces.SettingsRepository
	httpClient   HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// ContentStore returns nil when no write credential is configured; the
// caller decides whether that is acceptable for the operation.
func (x *Clients) ContentStore() interfaces.ContentStore {
	return x.contentStore
}

func (x *Clients) StoreFactory() interfaces.ContentStoreFactory {
	return x.storeFactory
}

func (x *Clients) Mirror() interfaces.MirrorSource {
	return x.mirror
}

func (x *Clients) Describer() interfaces.Describer {
	return x.describer
}

func (x *Clients) Settings() interfaces.SettingsRepository {
	return x.settings
}

func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithContentStore(store interfaces.ContentStore) Option {
	return func(x *Clients) {
		x.contentStore = store
	}
}

func WithStoreFactory(factory interfaces.ContentStoreFactory) Option {
	return func(x *Clients) {
		x.storeFactory = factory
	}
}

func WithMirror(mirror interfaces.MirrorSource) Option {
	return func(x *Clients) {
		x.mirror = mirror
	}
}

func WithDescriber(describer interfaces.Describer) Option {
	return func(x *Clients) {
		x.describer = describer
	}
}

func WithSettings(repo interfaces.SettingsRepository) Option {
	return func(x *Clients) {
		x.settings = repo
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

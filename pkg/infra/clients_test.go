package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/domain/interfaces"
	"github.com/secmon-lab/atelier/pkg/domain/mock"
	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/infra"
	"github.com/secmon-lab/atelier/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)

		// Everything credential-backed stays nil until configured.
		gt.V(t, clients.ContentStore()).Equal(nil)
		gt.V(t, clients.Mirror()).Equal(nil)
		gt.V(t, clients.Describer()).Equal(nil)
		gt.V(t, clients.Settings()).Equal(nil)
	})

	t.Run("WithContentStore option sets the store", func(t *testing.T) {
		store := &mock.ContentStoreMock{}
		clients := infra.New(infra.WithContentStore(store))
		gt.V(t, clients.ContentStore()).Equal(store)
	})

	t.Run("WithMirror option sets the mirror source", func(t *testing.T) {
		source := &mock.MirrorSourceMock{}
		clients := infra.New(infra.WithMirror(source))
		gt.V(t, clients.Mirror()).Equal(source)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		store := &mock.ContentStoreMock{}
		describerMock := &mock.DescriberMock{}
		settings := memory.New()
		factory := func(cfg *model.RepoConfig) (interfaces.ContentStore, error) {
			return store, nil
		}

		clients := infra.New(
			infra.WithContentStore(store),
			infra.WithDescriber(describerMock),
			infra.WithSettings(settings),
			infra.WithStoreFactory(factory),
		)

		gt.V(t, clients.ContentStore()).Equal(store)
		gt.V(t, clients.Describer()).Equal(describerMock)
		gt.V(t, clients.Settings()).Equal(settings)
		gt.True(t, clients.StoreFactory() != nil)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}

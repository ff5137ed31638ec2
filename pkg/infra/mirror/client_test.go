package mirror_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/atelier/pkg/domain/model"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/infra/mirror"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

var testCfg = &model.RepoConfig{
	Owner:  "ns",
	Repo:   "gallery",
	Branch: "main",
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/ns/gallery/main/gallery.json")

		// The cache-busting parameter carries the pinned clock.
		gt.V(t, r.URL.Query().Get("t")).Equal("1712345678901")

		fmt.Fprint(w, `[{"id":"a","title":"Café au Lait"}]`)
	}))
	defer srv.Close()

	client := mirror.New(testCfg, mirror.WithBaseURL(srv.URL))

	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.UnixMilli(1712345678901)
	})
	data := gt.R1(client.Fetch(ctx, "gallery.json")).NoError(t)
	gt.V(t, string(data)).Equal(`[{"id":"a","title":"Café au Lait"}]`)
}

func TestFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := mirror.New(testCfg, mirror.WithBaseURL(srv.URL))

	_, err := client.Fetch(context.Background(), "gallery.json")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrNotFound))
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := mirror.New(testCfg, mirror.WithBaseURL(srv.URL))

	_, err := client.Fetch(context.Background(), "gallery.json")
	gt.Error(t, err)
	gt.V(t, errors.Is(err, types.ErrNotFound)).Equal(false)
}

package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/atelier/pkg/controller/server"
	"github.com/secmon-lab/atelier/pkg/domain/mock"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger with request_id to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		// The middleware attaches a request-scoped logger.
		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, reqID).NotEqual("")
	})

	t.Run("statusCodeLogger passes through status codes", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
			srv := server.New(&mock.UseCaseMock{})
			mux := srv.Mux()
			mux.HandleFunc("/code", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			req := httptest.NewRequest("GET", "/code", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			gt.V(t, w.Code).Equal(code)
		}
	})

	t.Run("defaults to 200 when WriteHeader is not called", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/noheader", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		})

		req := httptest.NewRequest("GET", "/noheader", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusOK)
	})
}

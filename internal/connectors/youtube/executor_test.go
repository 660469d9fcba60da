package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tubedash/internal/core/domain"
)

func newTestExecutor() *Executor {
	return NewExecutor()
}

func TestExecutor_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/reports", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "channel==MINE", r.URL.Query().Get("ids"))
		assert.Equal(t, "video==a b&c", r.URL.Query().Get("filters"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	params := domain.NewQueryParams("ids", "channel==MINE", "filters", "video==a b&c")
	out := newTestExecutor().Execute(context.Background(), srv.URL+"/v2", "/reports", params, "tok")

	require.Equal(t, domain.OutcomeOK, out.Kind)
	assert.JSONEq(t, `{"ok":true}`, string(out.Payload))
}

func TestExecutor_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":401,"message":"Invalid Credentials"}}`))
	}))
	defer srv.Close()

	out := newTestExecutor().Execute(context.Background(), srv.URL, "/channels", domain.NewQueryParams(), "tok")
	assert.Equal(t, domain.OutcomeUnauthorized, out.Kind)
}

func TestExecutor_APIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quota exceeded","errors":[{"reason":"quotaExceeded"}]}}`))
	}))
	defer srv.Close()

	out := newTestExecutor().Execute(context.Background(), srv.URL, "/reports", domain.NewQueryParams(), "tok")
	require.Equal(t, domain.OutcomeAPIError, out.Kind)
	assert.Equal(t, http.StatusForbidden, out.Status)
	assert.Equal(t, "quota exceeded", out.Message)
}

func TestExecutor_APIErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	out := newTestExecutor().Execute(context.Background(), srv.URL, "/reports", domain.NewQueryParams(), "tok")
	require.Equal(t, domain.OutcomeAPIError, out.Kind)
	assert.Equal(t, "reports error: 500", out.Message)
}

func TestExecutor_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	out := newTestExecutor().Execute(context.Background(), srv.URL, "/reports", domain.NewQueryParams(), "tok")
	require.Equal(t, domain.OutcomeTransportError, out.Kind)
	assert.Error(t, out.Err)
}

func TestExecutor_BadURL(t *testing.T) {
	out := newTestExecutor().Execute(context.Background(), "://bad", "/reports", domain.NewQueryParams(), "tok")
	assert.Equal(t, domain.OutcomeTransportError, out.Kind)
}

func TestExecutor_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := newTestExecutor().Execute(ctx, srv.URL, "/reports", domain.NewQueryParams(), "tok")
	require.Equal(t, domain.OutcomeTransportError, out.Kind)
	assert.True(t, errors.Is(out.Err, context.Canceled))
}

func TestExecutor_TooManyRequestsIsAPIErrorWithoutBackoff(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	e := newTestExecutor()

	out := e.Execute(context.Background(), srv.URL, "/reports", domain.NewQueryParams(), "tok")
	require.Equal(t, domain.OutcomeAPIError, out.Kind)
	assert.Equal(t, http.StatusTooManyRequests, out.Status)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	out = e.Execute(ctx, srv.URL, "/channels", domain.NewQueryParams(), "tok")
	assert.Equal(t, domain.OutcomeOK, out.Kind)
	assert.Equal(t, int32(2), hits.Load())
}

func TestExecutor_OneRequestPerCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	e := newTestExecutor()
	start := time.Now()
	for i := 0; i < 20; i++ {
		out := e.Execute(context.Background(), srv.URL, "/reports", domain.NewQueryParams(), "tok")
		require.Equal(t, domain.OutcomeOK, out.Kind)
	}

	assert.Equal(t, int32(20), hits.Load())
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewExecutor_ClientTimeout(t *testing.T) {
	assert.Equal(t, 60*time.Second, NewExecutor().httpClient.Timeout)

	custom := &http.Client{}
	assert.Same(t, custom, NewExecutor(WithHTTPClient(custom)).httpClient)
}

func TestBuildURL(t *testing.T) {
	params := domain.NewQueryParams("part", "snippet,statistics", "mine", "true")

	assert.Equal(t,
		"https://api.example.com/v3/channels?mine=true&part=snippet%2Cstatistics",
		buildURL("https://api.example.com/v3/", "/channels", params))
	assert.Equal(t, "https://api.example.com/videos", buildURL("https://api.example.com", "videos", domain.NewQueryParams()))
}

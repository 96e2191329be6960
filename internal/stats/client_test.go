package stats

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func TestURL(t *testing.T) {
	assert.Equal(t,
		"https://cloud.specstory.com/api/v1/projects/abcd-ef01-2345-6789/stats",
		URL("https://cloud.specstory.com", "abcd-ef01-2345-6789"))
	assert.Equal(t, "http://localhost:8080/api/v1/projects/ws-1/stats", URL("http://localhost:8080", "ws-1"))
}

func TestClient_Fetch_OK(t *testing.T) {
	srv, gotPath := newTestServer(t, http.StatusOK, `{"count":5}`)

	stats, err := NewClient(srv.URL).Fetch(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/projects/abc-123/stats", *gotPath)
	assert.Equal(t, map[string]any{"count": float64(5)}, stats.Value)
	assert.JSONEq(t, `{"count":5}`, string(stats.Raw))
}

func TestClient_Fetch_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, "project not found")

	_, err := NewClient(srv.URL).Fetch(context.Background(), "abc-123")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "project not found", apiErr.Body)
	assert.Equal(t, "API returned status 404: project not found", err.Error())
}

func TestClient_Fetch_NonOKSuccessStatusIsAPIError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNoContent, "")

	_, err := NewClient(srv.URL).Fetch(context.Background(), "abc-123")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNoContent, apiErr.StatusCode)
}

func TestClient_Fetch_InvalidJSON(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, "<html>oops</html>")

	_, err := NewClient(srv.URL).Fetch(context.Background(), "abc-123")
	var formatErr *ResponseFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, err.Error(), "Failed to parse JSON response:")
	assert.Equal(t, "<html>oops</html>", formatErr.Body)
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = NewClient("http://" + addr).Fetch(context.Background(), "abc-123")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "Request failed:")
}

func TestClient_Fetch_BadBaseURL(t *testing.T) {
	_, err := NewClient("://not a url").Fetch(context.Background(), "abc-123")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestClient_Fetch_CanceledContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).Fetch(ctx, "abc-123")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Fetch_SingleAttempt(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, WithHTTPClient(srv.Client())).Fetch(context.Background(), "abc-123")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestStats_Indent(t *testing.T) {
	s := &Stats{Raw: []byte(`{"zeta":1,"alpha":{"n":[1,2]}}` + "\n")}

	out, err := s.Indent()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"zeta\": 1,\n  \"alpha\": {\n    \"n\": [\n      1,\n      2\n    ]\n  }\n}", out)
}

func TestStats_Indent_KeepsServerSpelling(t *testing.T) {
	s := &Stats{Raw: []byte(`{"ratio":1.0,"name":"caf\u00e9","n":1,"n":2}`)}

	out, err := s.Indent()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"ratio\": 1.0,\n  \"name\": \"caf\\u00e9\",\n  \"n\": 1,\n  \"n\": 2\n}", out)
}

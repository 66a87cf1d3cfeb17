package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recruitflow/recruitflow/internal/api"
	"github.com/recruitflow/recruitflow/internal/transport"
)

type stubHandler struct {
	result any
	err    error
}

func (s *stubHandler) Handle(_ context.Context, method string, _ json.RawMessage) (any, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func postRPC(t *testing.T, url, body string) transport.Response {
	t.Helper()

	resp, err := http.Post(url+"/rpc", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed transport.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed
}

func TestServer_Health(t *testing.T) {
	srv := httptest.NewServer(transport.NewServer(&stubHandler{}, nil, "", nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_RPCSuccess(t *testing.T) {
	srv := httptest.NewServer(transport.NewServer(&stubHandler{result: map[string]int{"total": 3}}, nil, "", nil))
	defer srv.Close()

	resp := postRPC(t, srv.URL, `{"jsonrpc": "2.0", "method": "get_interview_statistics", "id": 1}`)
	require.Nil(t, resp.Error)
	require.Equal(t, float64(1), resp.ID)
}

func TestServer_RPCUnknownMethod(t *testing.T) {
	srv := httptest.NewServer(transport.NewServer(&stubHandler{err: api.ErrUnknownMethod}, nil, "", nil))
	defer srv.Close()

	resp := postRPC(t, srv.URL, `{"jsonrpc": "2.0", "method": "nope", "id": 2}`)
	require.NotNil(t, resp.Error)
	require.Equal(t, transport.ErrMethodNotFound, resp.Error.Code)
}

func TestServer_RPCDomainError(t *testing.T) {
	srv := httptest.NewServer(transport.NewServer(&stubHandler{
		err: &api.APIError{Code: "CANDIDATE_NOT_FOUND", Message: "candidate not found"},
	}, nil, "", nil))
	defer srv.Close()

	resp := postRPC(t, srv.URL, `{"jsonrpc": "2.0", "method": "get_candidate", "id": 3}`)
	require.NotNil(t, resp.Error)
	require.Equal(t, transport.ErrInvalidParams, resp.Error.Code)
	require.Equal(t, "candidate not found", resp.Error.Message)
}

func TestServer_RPCInvalidRequest(t *testing.T) {
	srv := httptest.NewServer(transport.NewServer(&stubHandler{}, nil, "", nil))
	defer srv.Close()

	resp := postRPC(t, srv.URL, `{"method": "missing jsonrpc"}`)
	require.NotNil(t, resp.Error)
	require.Equal(t, transport.ErrInvalidReq, resp.Error.Code)
}

func TestServer_AuthToken(t *testing.T) {
	srv := httptest.NewServer(transport.NewServer(&stubHandler{result: "ok"}, nil, "secret", nil))
	defer srv.Close()

	// Missing token.
	resp, err := http.Post(srv.URL+"/rpc", "application/json",
		bytes.NewBufferString(`{"jsonrpc": "2.0", "method": "list_candidates", "id": 1}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong token.
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/rpc",
		bytes.NewBufferString(`{"jsonrpc": "2.0", "method": "list_candidates", "id": 1}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid token.
	req, err = http.NewRequest(http.MethodPost, srv.URL+"/rpc",
		bytes.NewBufferString(`{"jsonrpc": "2.0", "method": "list_candidates", "id": 1}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

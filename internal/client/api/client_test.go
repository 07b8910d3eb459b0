package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fitjournal/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/", 0)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	client = NewClient("http://localhost:8080", 2*time.Second)
	assert.Equal(t, 2*time.Second, client.httpClient.Timeout)
}

// TestClient_Mutations проверяет соответствие методов клиента HTTP методам
func TestClient_Mutations(t *testing.T) {
	tests := []struct {
		call       func(c *Client, ctx context.Context) (*Response, error)
		name       string
		wantMethod string
		wantBody   string
	}{
		{
			name:       "create is POST",
			wantMethod: http.MethodPost,
			wantBody:   `{"count":10}`,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Create(ctx, "/api/v1/entries", json.RawMessage(`{"count":10}`))
			},
		},
		{
			name:       "update is PUT",
			wantMethod: http.MethodPut,
			wantBody:   `{"count":12}`,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Update(ctx, "/api/v1/entries", json.RawMessage(`{"count":12}`))
			},
		},
		{
			name:       "delete is DELETE without body",
			wantMethod: http.MethodDelete,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Delete(ctx, "/api/v1/entries", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, "/api/v1/entries", r.URL.Path)

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				if tt.wantBody != "" {
					assert.JSONEq(t, tt.wantBody, string(body))
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				} else {
					assert.Empty(t, body)
				}

				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"e-1"}`))
			}))
			defer server.Close()

			resp, err := tt.call(NewClient(server.URL, time.Second), context.Background())

			require.NoError(t, err)
			assert.True(t, resp.OK())
			assert.Equal(t, http.StatusCreated, resp.Status)
			assert.JSONEq(t, `{"id":"e-1"}`, string(resp.Data))
		})
	}
}

// TestClient_NonSuccessStatus проверяет, что статус вне 2xx не превращается в ошибку
func TestClient_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		status      int
	}{
		{
			name:        "json error body",
			status:      http.StatusConflict,
			body:        `{"error":"conflict","message":"entry already exists"}`,
			wantMessage: "entry already exists",
		},
		{
			name:        "plain text body",
			status:      http.StatusBadGateway,
			body:        "Bad Gateway",
			wantMessage: "Bad Gateway",
		},
		{
			name:        "empty body",
			status:      http.StatusServiceUnavailable,
			wantMessage: "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := NewClient(server.URL, time.Second).Create(context.Background(), "/x", json.RawMessage(`{}`))

			require.NoError(t, err)
			assert.False(t, resp.OK())
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.ErrorMessage())
		})
	}
}

// TestClient_Get проверяет передачу параметров запроса
func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, api.EntriesPath, r.URL.Path)
		assert.Equal(t, "2026-10-15", r.URL.Query().Get("date"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode([]api.Entry{{ID: "e-1", Exercise: "pushups", Count: 20}})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL, time.Second).Get(context.Background(), api.EntriesPath, map[string]any{
		"date":  "2026-10-15",
		"limit": 5,
	})

	require.NoError(t, err)
	require.True(t, resp.OK())

	var entries []api.Entry
	require.NoError(t, json.Unmarshal(resp.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "pushups", entries[0].Exercise)
}

// TestClient_NetworkError проверяет, что недоступный сервер возвращает ошибку
func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	resp, err := NewClient(url, time.Second).Update(context.Background(), "/x", nil)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "request failed")
}

// TestClient_Ping проверяет health check
func TestClient_Ping(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, api.HealthPath, r.URL.Path)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	assert.NoError(t, client.Ping(context.Background()))

	healthy.Store(false)
	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

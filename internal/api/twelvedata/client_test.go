package twelvedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeSeriesPayload = `{
	"meta": {"symbol": "EUR/USD", "interval": "1day"},
	"values": [
		{"datetime": "2024-01-03", "open": "101.0", "high": "103.0", "low": "100.0", "close": "102.5", "volume": "1200"},
		{"datetime": "2024-01-01", "open": "99.0", "high": "101.0", "low": "98.0", "close": "100.0", "volume": "1000"},
		{"datetime": "2024-01-02", "open": "100.0", "high": "102.0", "low": "99.5", "close": "101.0", "volume": "1100"}
	],
	"status": "ok"
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(ClientOptions{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
		RequestsPerSec: 100,
	})
	return client, server
}

func TestGetHistorySortsOldestFirst(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "EUR/USD", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1day", r.URL.Query().Get("interval"))
		assert.Equal(t, "3", r.URL.Query().Get("outputsize"))
		w.Write([]byte(timeSeriesPayload))
	})
	defer server.Close()

	obs, err := client.GetHistory(context.Background(), "EUR/USD", 3)
	require.NoError(t, err)
	require.Len(t, obs, 3)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), obs[0].Timestamp)
	assert.Equal(t, 100.0, obs[0].Price)
	assert.Equal(t, 1000.0, obs[0].Volume)
	assert.True(t, obs[1].Timestamp.After(obs[0].Timestamp))
	assert.True(t, obs[2].Timestamp.After(obs[1].Timestamp))
	assert.Equal(t, 102.5, obs[2].Price)
}

func TestGetHistoryAPIError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"symbol not found"}`))
	})
	defer server.Close()

	_, err := client.GetHistory(context.Background(), "NOPE", 10)
	assert.Error(t, err)
}

func TestGetHistoryEmptyValues(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{},"values":[],"status":"ok"}`))
	})
	defer server.Close()

	_, err := client.GetHistory(context.Background(), "EUR/USD", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data available")
}

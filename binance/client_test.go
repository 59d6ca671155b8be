package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const klinesPayload = `[
  [1499040000000, "0.01634790", "0.80000000", "0.01575800", "0.01577100", "148976.11427815",
   1499644799999, "2434.19055334", 308, "1756.87402397", "28.46694368", "0"],
  [1499040060000, "0.01577100", "0.01600000", "0.01570000", "0.01590000", "100.00000000",
   1499644859999, "1.59000000", 20, "50.00000000", "0.79500000", "0"]
]`

func TestFetchKlines(t *testing.T) {
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/klines", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"symbol":   q.Get("symbol"),
			"interval": q.Get("interval"),
			"limit":    q.Get("limit"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(klinesPayload))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	defer client.Close()

	candles, err := client.FetchKlines(context.Background(), "btcusdt", "1m", 500)
	require.NoError(t, err)
	require.Len(t, candles, 2)

	assert.Equal(t, "BTCUSDT", gotQuery["symbol"])
	assert.Equal(t, "1m", gotQuery["interval"])
	assert.Equal(t, "500", gotQuery["limit"])

	first := candles[0]
	assert.Equal(t, "BTCUSDT", first.Symbol)
	assert.True(t, first.Time.Equal(time.UnixMilli(1499040000000).UTC()))
	assert.InDelta(t, 0.0163479, first.Open, 1e-9)
	assert.InDelta(t, 0.8, first.High, 1e-9)
	assert.InDelta(t, 0.015758, first.Low, 1e-9)
	assert.InDelta(t, 0.015771, first.Close, 1e-9)
	assert.InDelta(t, 148976.11427815, first.Volume, 1e-6)

	assert.True(t, candles[1].Time.After(first.Time))
}

func TestFetchKlinesLimitClamped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	defer client.Close()

	candles, err := client.FetchKlines(context.Background(), "BTCUSDT", "1m", 5000)
	require.NoError(t, err)
	assert.Empty(t, candles)
}

func TestFetchKlinesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	defer client.Close()

	_, err := client.FetchKlines(context.Background(), "NOPE", "1m", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 400")
	assert.Contains(t, err.Error(), "Invalid symbol")
}

func TestFetchKlinesBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[1499040000000, 12345, "0.8", "0.015", "0.0157", "100"]]`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	defer client.Close()

	_, err := client.FetchKlines(context.Background(), "BTCUSDT", "1m", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad open")
}

func TestFetchKlinesMissingSymbol(t *testing.T) {
	client := NewClient()
	defer client.Close()

	_, err := client.FetchKlines(context.Background(), "", "1m", 10)
	assert.Error(t, err)
}

// Package binance fetches historical klines (candlesticks) from the Binance
// public REST API. It is the data-source collaborator for the backtester:
// its only contract toward the engine is to supply a valid ordered candle
// series.
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/backtester/pricing"
)

const (
	DefaultBaseURL = "https://api.binance.com"

	// MaxLimit is the largest number of klines Binance returns per request.
	MaxLimit = 1000
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL is mainly for tests pointed at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Close releases idle connections held by the underlying transport. Callers
// should pair every NewClient with a deferred Close.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// FetchKlines downloads up to limit candles for a symbol/interval pair and
// returns them oldest first, as Binance serves them.
//
// Binance encodes each kline as a JSON array:
//
//	[ openTime(ms), open, high, low, close, volume, closeTime, ... ]
//
// with prices and volume as strings. Only the first six fields are kept.
func (c *Client) FetchKlines(ctx context.Context, symbol, interval string, limit int) ([]pricing.Candle, error) {
	if symbol == "" {
		return nil, fmt.Errorf("binance: missing symbol")
	}
	if interval == "" {
		interval = "1m"
	}
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path = "/api/v3/klines"

	q := u.Query()
	q.Set("symbol", strings.ToUpper(symbol))
	q.Set("interval", interval)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return nil, fmt.Errorf("binance klines http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var raw [][]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("binance: decode klines: %w", err)
	}

	candles := make([]pricing.Candle, 0, len(raw))
	for i, row := range raw {
		candle, err := parseKline(row)
		if err != nil {
			return nil, fmt.Errorf("binance: kline %d: %w", i, err)
		}
		candle.Symbol = strings.ToUpper(symbol)
		candles = append(candles, candle)
	}
	return candles, nil
}

func parseKline(row []any) (pricing.Candle, error) {
	if len(row) < 6 {
		return pricing.Candle{}, fmt.Errorf("need at least 6 fields, got %d", len(row))
	}

	ms, ok := row[0].(float64)
	if !ok {
		return pricing.Candle{}, fmt.Errorf("bad open time %v", row[0])
	}

	vals := make([]float64, 5)
	names := []string{"open", "high", "low", "close", "volume"}
	for i := 0; i < 5; i++ {
		s, ok := row[i+1].(string)
		if !ok {
			return pricing.Candle{}, fmt.Errorf("bad %s %v", names[i], row[i+1])
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return pricing.Candle{}, fmt.Errorf("bad %s %q: %w", names[i], s, err)
		}
		vals[i] = v
	}

	return pricing.Candle{
		Time:   time.UnixMilli(int64(ms)).UTC(),
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}

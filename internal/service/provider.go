package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/config"
	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// RateProvider fetches the current exchange rates relative to the base
// currency.
type RateProvider interface {
	FetchRates(ctx context.Context) (domain.Rates, error)
}

// ProviderClient talks to the JSON rate-provider endpoint. The endpoint
// returns a flat currency-code to rate mapping keyed by an API credential.
type ProviderClient struct {
	baseURL    string
	apiKey     string
	base       string
	httpClient *http.Client
}

func NewProviderClient(cfg *config.Config) *ProviderClient {
	return &ProviderClient{
		baseURL:    cfg.RateProviderURL,
		apiKey:     cfg.RateProviderKey,
		base:       cfg.BaseCurrency,
		httpClient: &http.Client{Timeout: cfg.RateTimeout},
	}
}

func (c *ProviderClient) FetchRates(ctx context.Context) (domain.Rates, error) {
	url := fmt.Sprintf("%s?base=%s", c.baseURL, c.base)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var result struct {
		Base  string             `json:"base"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse rates: %w", err)
	}
	if len(result.Rates) == 0 {
		return nil, fmt.Errorf("rate provider returned no rates for base %s", c.base)
	}

	rates := make(domain.Rates, len(result.Rates))
	for code, r := range result.Rates {
		if r <= 0 {
			continue
		}
		rates[code] = decimal.NewFromFloat(r)
	}
	return rates, nil
}

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// BankRatesProvider scrapes the central bank's published-rates page as a
// fallback when the JSON provider is down. The page lists one table row per
// currency: code, units, rate in base currency per that many units.
type BankRatesProvider struct {
	pageURL    string
	httpClient *http.Client
}

func NewBankRatesProvider(pageURL string) *BankRatesProvider {
	return &BankRatesProvider{
		pageURL:    pageURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *BankRatesProvider) FetchRates(ctx context.Context) (domain.Rates, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse rates page: %w", err)
	}

	rates := make(domain.Rates)
	doc.Find("table.rates tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		code := strings.ToUpper(strings.TrimSpace(cells.Eq(0).Text()))
		if len(code) != 3 {
			return
		}
		units, err := parseBankNumber(cells.Eq(1).Text())
		if err != nil || units.IsZero() {
			return
		}
		// Rate column is base currency per N units of the foreign currency.
		// The cache wants foreign units per one base unit.
		perUnits, err := parseBankNumber(cells.Eq(2).Text())
		if err != nil || perUnits.IsZero() {
			return
		}
		rates[code] = units.Div(perUnits)
	})

	if len(rates) == 0 {
		return nil, fmt.Errorf("no parsable rates on page %s", p.pageURL)
	}
	return rates, nil
}

func parseBankNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(s)
}

// ChainProvider tries each provider in order and returns the first success.
type ChainProvider []RateProvider

func (c ChainProvider) FetchRates(ctx context.Context) (domain.Rates, error) {
	var lastErr error
	for _, p := range c {
		rates, err := p.FetchRates(ctx)
		if err == nil {
			return rates, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no rate providers configured")
	}
	return nil, lastErr
}

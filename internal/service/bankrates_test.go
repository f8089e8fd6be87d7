package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

const bankRatesPage = `<html><body>
<table class="rates">
<thead><tr><th>Currency</th><th>Units</th><th>Rate</th></tr></thead>
<tbody>
<tr><td>USD</td><td>1</td><td>16,000.00</td></tr>
<tr><td>JPY</td><td>100</td><td>110,000.00</td></tr>
<tr><td>???</td><td>1</td><td>broken</td></tr>
</tbody>
</table>
</body></html>`

func TestBankRatesProvider_FetchRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(bankRatesPage))
	}))
	defer server.Close()

	provider := NewBankRatesProvider(server.URL)
	rates, err := provider.FetchRates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 2)

	// 16000 IDR buys 1 USD, so one IDR is 1/16000 USD.
	want := decimal.NewFromInt(1).Div(decimal.NewFromInt(16000))
	assert.True(t, want.Equal(rates["USD"]), "got %s", rates["USD"])

	// JPY is quoted per 100 units.
	want = decimal.NewFromInt(100).Div(decimal.NewFromInt(110000))
	assert.True(t, want.Equal(rates["JPY"]), "got %s", rates["JPY"])
}

func TestBankRatesProvider_NoTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body><p>maintenance</p></body></html>"))
	}))
	defer server.Close()

	provider := NewBankRatesProvider(server.URL)
	_, err := provider.FetchRates(context.Background())
	assert.ErrorContains(t, err, "no parsable rates")
}

type failingProvider struct{ err error }

func (p failingProvider) FetchRates(context.Context) (domain.Rates, error) {
	return nil, p.err
}

func TestChainProvider_FallsThrough(t *testing.T) {
	chain := ChainProvider{
		failingProvider{err: errors.New("primary down")},
		&mockProvider{rates: usdRates()},
	}

	rates, err := chain.FetchRates(context.Background())
	require.NoError(t, err)
	assert.Len(t, rates, 2)
}

func TestChainProvider_AllFail(t *testing.T) {
	chain := ChainProvider{
		failingProvider{err: errors.New("primary down")},
		failingProvider{err: errors.New("fallback down")},
	}

	_, err := chain.FetchRates(context.Background())
	assert.ErrorContains(t, err, "fallback down")
}

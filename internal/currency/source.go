package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HTTPRateSource fetches latest rates from a frankfurter-style API:
// GET <url>?base=EUR&symbols=USD,GBP returning {"rates": {"USD": 1.08}}.
// Rates come back as units per one unit of the base currency, which is
// exactly the Snapshot convention.
type HTTPRateSource struct {
	client  *http.Client
	baseURL string
	base    string
}

func NewHTTPRateSource(baseURL, base string, timeout time.Duration) *HTTPRateSource {
	return &HTTPRateSource{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		base:    strings.ToUpper(base),
	}
}

type ratesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (s *HTTPRateSource) Rates(ctx context.Context, codes []string) (Snapshot, error) {
	symbols := make([]string, 0, len(codes))

	for _, code := range codes {
		if code == s.base {
			continue
		}

		symbols = append(symbols, code)
	}

	snap := Snapshot{s.base: decimal.NewFromInt(1)}
	if len(symbols) == 0 {
		return snap, nil
	}

	q := url.Values{}
	q.Set("base", s.base)
	q.Set("symbols", strings.Join(symbols, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building rates request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates API returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding rates response: %w", err)
	}

	for code, rate := range body.Rates {
		snap[strings.ToUpper(code)] = rate
	}

	return snap, nil
}

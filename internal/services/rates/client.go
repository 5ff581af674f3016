package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRate applies when no lookup has succeeded yet.
const DefaultRate = 1.0

// Quote is one exchange-rate answer. It echoes the requested pair so a
// caller can discard a response that arrives after the selection changed.
type Quote struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// Client looks up exchange rates from an external HTTP service. Lookups are
// fallible by design: a failure must never block a transfer, the caller
// keeps its previous rate instead.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Lookup fetches the rate for one unit of from expressed in to. Same-currency
// pairs short-circuit to 1 without a network call.
func (c *Client) Lookup(ctx context.Context, from, to string) (Quote, error) {
	if from == to || from == "" || to == "" {
		return Quote{From: from, To: to, Rate: DefaultRate}, nil
	}
	if c.baseURL == "" {
		return Quote{}, fmt.Errorf("rates: no endpoint configured")
	}

	reqURL := fmt.Sprintf("%s?from=%s&to=%s", c.baseURL, url.QueryEscape(from), url.QueryEscape(to))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("rates: building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("pair", from+"/"+to).Msg("rate lookup failed")
		return Quote{}, fmt.Errorf("rates: lookup %s/%s: %w", from, to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("rates: lookup %s/%s: unexpected status %d", from, to, resp.StatusCode)
	}

	var body struct {
		Rate float64 `json:"rate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Quote{}, fmt.Errorf("rates: decoding response: %w", err)
	}
	if body.Rate <= 0 {
		return Quote{}, fmt.Errorf("rates: lookup %s/%s: non-positive rate %v", from, to, body.Rate)
	}

	return Quote{From: from, To: to, Rate: body.Rate}, nil
}

// Package datago provides a client for the data.go.kr open-data portal's
// food item report service.
package datago

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "http://apis.data.go.kr/1471000/FoodFlshdAddtvrptInfoService"
	listPath       = "/getFoodFlshdAddtvrptInfoList"
)

// Client fetches food item report pages from the portal.
type Client interface {
	// Fetch retrieves one page of report rows. page is 1-based; rows is the
	// requested page size.
	Fetch(ctx context.Context, page, rows int, opts ...FetchOption) (*Payload, error)
}

// Payload is a decoded response body: the query-wide row count and the raw
// rows of the requested page.
type Payload struct {
	TotalCount int
	Items      []json.RawMessage
}

// FetchOption adds a filter to a fetch request.
type FetchOption func(url.Values)

// WithCompanyName filters rows by manufacturer name.
func WithCompanyName(name string) FetchOption {
	return func(v url.Values) {
		if name != "" {
			v.Set("BSSH_NM", name)
		}
	}
}

// WithProductName filters rows by product name.
func WithProductName(name string) FetchOption {
	return func(v url.Values) {
		if name != "" {
			v.Set("PRDLST_NM", name)
		}
	}
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets the requests-per-second limit for outbound calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

type httpClient struct {
	serviceKey string
	baseURL    string
	http       *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a data.go.kr client. serviceKey is the portal-issued
// credential, already decoded to its raw form.
func NewClient(serviceKey string, opts ...Option) Client {
	c := &httpClient{
		serviceKey: serviceKey,
		baseURL:    defaultBaseURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(10, 10),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Fetch(ctx context.Context, page, rows int, opts ...FetchOption) (*Payload, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "datago: rate limit wait")
	}

	q := url.Values{}
	q.Set("serviceKey", c.serviceKey)
	q.Set("pageNo", strconv.Itoa(page))
	q.Set("numOfRows", strconv.Itoa(rows))
	q.Set("type", "json")
	for _, opt := range opts {
		opt(q)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "datago: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "datago: request")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "datago: read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("datago: status %d: %s", resp.StatusCode, truncate(body))
	}

	return decodePayload(body)
}

func decodePayload(body []byte) (*Payload, error) {
	// Credential and quota rejections come back as XML, which fails here
	// and surfaces as a decode error rather than an empty page.
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, eris.Wrap(err, "datago: decode response")
	}
	if env.Body == nil {
		return nil, eris.New("datago: body missing from response")
	}
	return &Payload{TotalCount: int(env.Body.TotalCount), Items: env.Body.Items}, nil
}

type envelope struct {
	Body *responseBody `json:"body"`
}

type responseBody struct {
	TotalCount flexInt  `json:"totalCount"`
	Items      rawItems `json:"items"`
}

// flexInt decodes counts that arrive as either a JSON number or a string.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return eris.Wrapf(err, "datago: parse count %q", s)
	}
	*f = flexInt(n)
	return nil
}

// rawItems accepts both a JSON array and the bare single object the portal
// returns for one-row pages.
type rawItems []json.RawMessage

func (r *rawItems) UnmarshalJSON(b []byte) error {
	t := bytes.TrimSpace(b)
	switch {
	case len(t) == 0 || bytes.Equal(t, []byte("null")):
		*r = nil
	case t[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(t, &items); err != nil {
			return eris.Wrap(err, "datago: decode items")
		}
		*r = items
	default:
		*r = rawItems{json.RawMessage(t)}
	}
	return nil
}

func truncate(b []byte) string {
	const max = 200
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}

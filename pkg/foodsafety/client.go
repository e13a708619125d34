// Package foodsafety provides a client for the foodsafetykorea.go.kr open API.
//
// The API addresses datasets by service code and row range, with optional
// filters appended as a trailing path segment:
//
//	BASE/{key}/{SERVICE}/json/{start}/{end}[/K1=v1&K2=v2]
package foodsafety

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://openapi.foodsafetykorea.go.kr/api"

// Dataset identifiers for the services this project consumes.
const (
	ServiceFoodCompanies      = "I1220" // food manufacturing business permits
	ServiceLivestockCompanies = "I1300" // livestock processing businesses
	ServiceHealthFoodLicenses = "I2860" // health functional food license changes
	ServiceLicenseChanges     = "I2859" // food business license change ledger
	ServiceFoodReports        = "C002"  // food item reports with raw materials
	ServiceHealthFoodReports  = "C003"  // health food item reports with raw materials
	ServiceHealthFoodItems    = "C006"  // health food item info
	ServiceFoodItems          = "I1250" // food item reports, full detail
)

// Client fetches row ranges from foodsafetykorea datasets.
type Client interface {
	// Fetch retrieves rows start..end (1-based, inclusive) from a service
	// dataset, with optional K=V filters.
	Fetch(ctx context.Context, service string, start, end int, params map[string]string) (*Payload, error)
}

// Payload is a decoded service envelope: the dataset-wide row count and the
// raw rows of the requested window. Rows keep their service-specific keys;
// callers decode them into their own shapes.
type Payload struct {
	TotalCount int
	Rows       []json.RawMessage
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
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a foodsafetykorea API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
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

func (c *httpClient) Fetch(ctx context.Context, service string, start, end int, params map[string]string) (*Payload, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "foodsafety: rate limit wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(service, start, end, params), nil)
	if err != nil {
		return nil, eris.Wrap(err, "foodsafety: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "foodsafety: %s request", service)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "foodsafety: read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("foodsafety: %s status %d: %s", service, resp.StatusCode, truncate(body))
	}

	return decodePayload(service, body)
}

// requestURL assembles BASE/{key}/{SERVICE}/json/{start}/{end}[/params].
// Filter keys are sorted so the same query always produces the same URL.
func (c *httpClient) requestURL(service string, start, end int, params map[string]string) string {
	u := fmt.Sprintf("%s/%s/%s/json/%d/%d", c.baseURL, url.PathEscape(c.apiKey), service, start, end)
	if len(params) == 0 {
		return u
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+escapeParam(params[k]))
	}
	return u + "/" + strings.Join(pairs, "&")
}

// escapeParam percent-encodes a filter value for embedding in the trailing
// path segment. Query escaping is needed so '&' and '=' inside a value
// cannot split the pair list; '+' is rewritten to %20 because path segments
// do not decode '+' as space.
func escapeParam(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

func decodePayload(service string, body []byte) (*Payload, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, eris.Wrapf(err, "foodsafety: decode %s response", service)
	}

	raw, ok := top[service]
	if !ok {
		// The API reports request-level rejections (bad key, unknown
		// service) as a bare RESULT block with no service envelope.
		if res, resOK := top["RESULT"]; resOK {
			var rb resultBlock
			if err := json.Unmarshal(res, &rb); err == nil && rb.Code != "" {
				return nil, eris.Errorf("foodsafety: %s rejected: %s %s", service, rb.Code, rb.Msg)
			}
		}
		return nil, eris.Errorf("foodsafety: %s envelope missing from response", service)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, eris.Wrapf(err, "foodsafety: decode %s envelope", service)
	}
	if env.Result != nil && strings.HasPrefix(env.Result.Code, "ERROR") {
		return nil, eris.Errorf("foodsafety: %s error: %s %s", service, env.Result.Code, env.Result.Msg)
	}

	return &Payload{TotalCount: int(env.TotalCount), Rows: env.Row}, nil
}

type envelope struct {
	TotalCount flexInt      `json:"total_count"`
	Row        rawRows      `json:"row"`
	Result     *resultBlock `json:"RESULT"`
}

type resultBlock struct {
	Code string `json:"CODE"`
	Msg  string `json:"MSG"`
}

// flexInt decodes counts that arrive as either a JSON string or a number.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return eris.Wrapf(err, "foodsafety: parse count %q", s)
	}
	*f = flexInt(n)
	return nil
}

// rawRows accepts both a JSON array and the bare single object some
// services return for one-row windows.
type rawRows []json.RawMessage

func (r *rawRows) UnmarshalJSON(b []byte) error {
	t := bytes.TrimSpace(b)
	switch {
	case len(t) == 0 || bytes.Equal(t, []byte("null")):
		*r = nil
	case t[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(t, &items); err != nil {
			return eris.Wrap(err, "foodsafety: decode rows")
		}
		*r = items
	default:
		*r = rawRows{json.RawMessage(t)}
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

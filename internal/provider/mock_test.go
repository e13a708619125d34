package provider

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/opendatakr/foodsearch/pkg/datago"
	"github.com/opendatakr/foodsearch/pkg/foodsafety"
)

// fakeFoodSafety implements foodsafety.Client for adapter tests. It
// records the last request and returns a canned payload.
type fakeFoodSafety struct {
	payload *foodsafety.Payload
	err     error

	calls   int
	service string
	start   int
	end     int
	params  map[string]string
}

func (f *fakeFoodSafety) Fetch(_ context.Context, service string, start, end int, params map[string]string) (*foodsafety.Payload, error) {
	f.calls++
	f.service = service
	f.start = start
	f.end = end
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

// fakePortal implements datago.Client. Fetch options are applied to query
// so tests can assert which filters were requested.
type fakePortal struct {
	payload *datago.Payload
	err     error

	page  int
	rows  int
	query url.Values
}

func (f *fakePortal) Fetch(_ context.Context, page, rows int, opts ...datago.FetchOption) (*datago.Payload, error) {
	f.page = page
	f.rows = rows
	f.query = url.Values{}
	for _, opt := range opts {
		opt(f.query)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func payloadRows(rows ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, json.RawMessage(r))
	}
	return out
}

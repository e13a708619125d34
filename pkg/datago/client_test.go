package datago

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/getFoodFlshdAddtvrptInfoList", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "secret-key", q.Get("serviceKey"))
		assert.Equal(t, "2", q.Get("pageNo"))
		assert.Equal(t, "50", q.Get("numOfRows"))
		assert.Equal(t, "json", q.Get("type"))
		assert.Equal(t, "농심", q.Get("BSSH_NM"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"header":{"resultCode":"00"},"body":{"totalCount":321,"items":[{"PRDLST_NM":"신라면"},{"PRDLST_NM":"짜파게티"}]}}`))
	}))
	defer srv.Close()

	client := NewClient("secret-key", WithBaseURL(srv.URL))
	got, err := client.Fetch(context.Background(), 2, 50, WithCompanyName("농심"))

	require.NoError(t, err)
	assert.Equal(t, 321, got.TotalCount)
	require.Len(t, got.Items, 2)
	assert.JSONEq(t, `{"PRDLST_NM":"신라면"}`, string(got.Items[0]))
}

func TestFetch_SingleItemObject(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"body":{"totalCount":"1","items":{"PRDLST_NM":"불닭볶음면"}}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	got, err := client.Fetch(context.Background(), 1, 10, WithProductName("불닭"))

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalCount)
	require.Len(t, got.Items, 1)
	assert.JSONEq(t, `{"PRDLST_NM":"불닭볶음면"}`, string(got.Items[0]))
}

func TestFetch_EmptyPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"body":{"totalCount":0}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	got, err := client.Fetch(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalCount)
	assert.Empty(t, got.Items)
}

func TestFetch_MissingBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"header":{"resultCode":"30","resultMsg":"SERVICE_KEY_IS_NOT_REGISTERED_ERROR"}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), 1, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "body missing")
}

func TestFetch_XMLErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(`<OpenAPI_ServiceResponse><cmmMsgHeader><returnAuthMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</returnAuthMsg></cmmMsgHeader></OpenAPI_ServiceResponse>`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), 1, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetch_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`bad gateway`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), 1, 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetch_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(ctx, 1, 10)

	require.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient("my-key")
	hc := c.(*httpClient)
	assert.Equal(t, "my-key", hc.serviceKey)
	assert.Equal(t, defaultBaseURL, hc.baseURL)
	assert.NotNil(t, hc.limiter)
	assert.Equal(t, 5*time.Second, hc.http.Timeout)
}

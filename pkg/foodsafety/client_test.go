package foodsafety

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
		assert.Contains(t, r.URL.EscapedPath(), "/test-key/I1220/json/1/10/")
		// Hangul filter values travel percent-encoded in the path.
		assert.Contains(t, r.URL.EscapedPath(), "BSSH_NM=%EB%86%8D%EC%8B%AC")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"I1220":{"total_count":"123","row":[{"BSSH_NM":"농심(주)"},{"BSSH_NM":"삼양식품(주)"}],"RESULT":{"CODE":"INFO-000","MSG":"정상처리"}}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	got, err := client.Fetch(context.Background(), ServiceFoodCompanies, 1, 10, map[string]string{"BSSH_NM": "농심"})

	require.NoError(t, err)
	assert.Equal(t, 123, got.TotalCount)
	require.Len(t, got.Rows, 2)
	assert.JSONEq(t, `{"BSSH_NM":"농심(주)"}`, string(got.Rows[0]))
}

func TestFetch_ParamOrderDeterministic(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Keys are sorted, values escaped; '&' inside a value cannot split pairs.
		assert.Contains(t, r.URL.EscapedPath(), "/BSSH_NM=%EB%8F%99%EC%9B%90F%26B&LCNS_NO=19680001")
		w.Write([]byte(`{"I2859":{"total_count":"0","row":[]}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), ServiceLicenseChanges, 1, 100, map[string]string{
		"LCNS_NO": "19680001",
		"BSSH_NM": "동원F&B",
	})
	require.NoError(t, err)
}

func TestFetch_SingleRowObject(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"C002":{"total_count":"1","row":{"PRDLST_NM":"신라면"}}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	got, err := client.Fetch(context.Background(), ServiceFoodReports, 1, 20, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalCount)
	require.Len(t, got.Rows, 1)
	assert.JSONEq(t, `{"PRDLST_NM":"신라면"}`, string(got.Rows[0]))
}

func TestFetch_NumericTotalCount(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"I1250":{"total_count":7,"row":[]}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	got, err := client.Fetch(context.Background(), ServiceFoodItems, 1, 10, nil)

	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalCount)
	assert.Empty(t, got.Rows)
}

func TestFetch_NoData(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"I1220":{"total_count":"0","RESULT":{"CODE":"INFO-200","MSG":"해당하는 데이터가 없습니다."}}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	got, err := client.Fetch(context.Background(), ServiceFoodCompanies, 1, 10, nil)

	require.NoError(t, err, "INFO codes are not failures")
	assert.Equal(t, 0, got.TotalCount)
	assert.Empty(t, got.Rows)
}

func TestFetch_MissingEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"RESULT":{"CODE":"ERROR-300","MSG":"필수 값이 누락되어 있습니다."}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), ServiceFoodCompanies, 1, 10, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERROR-300")
}

func TestFetch_EmptyResponseObject(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), ServiceFoodCompanies, 1, 10, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "envelope missing")
}

func TestFetch_EnvelopeError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"I2860":{"RESULT":{"CODE":"ERROR-310","MSG":"해당하는 서비스를 찾을 수 없습니다."}}}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), ServiceHealthFoodLicenses, 1, 10, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERROR-310")
}

func TestFetch_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`upstream down`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), ServiceFoodCompanies, 1, 10, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetch_MalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL))
	_, err := client.Fetch(context.Background(), ServiceFoodCompanies, 1, 10, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
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
	_, err := client.Fetch(ctx, ServiceFoodCompanies, 1, 10, nil)

	require.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient("my-key")
	hc := c.(*httpClient)
	assert.Equal(t, "my-key", hc.apiKey)
	assert.Equal(t, defaultBaseURL, hc.baseURL)
	assert.NotNil(t, hc.limiter)
	assert.Equal(t, 5*time.Second, hc.http.Timeout)
}

func TestEscapeParam(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%EB%86%8D%EC%8B%AC", escapeParam("농심"))
	assert.Equal(t, "%EB%8F%99%EC%9B%90F%26B%28%EC%A3%BC%29", escapeParam("동원F&B(주)"))
	assert.Equal(t, "a%20b", escapeParam("a b"))
}

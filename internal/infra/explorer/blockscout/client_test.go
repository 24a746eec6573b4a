package blockscout

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gabapcia/modescope/internal/explorer"
	"github.com/gabapcia/modescope/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
)

const testAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

func TestMain(m *testing.M) {
	if err := logger.Init("error"); err != nil {
		panic(err)
	}
	goleak.VerifyTestMain(m)
}

// newTestClient starts an explorer stub and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	c := NewClient(srv.URL+"/api/", WithTimeout(2*time.Second))
	t.Cleanup(func() {
		c.httpClient.HTTPClient.CloseIdleConnections()
		srv.Close()
	})

	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestNewClient(t *testing.T) {
	t.Run("defaults to the Mode network explorer", func(t *testing.T) {
		c := NewClient("")

		assert.Equal(t, DefaultBaseURL, c.baseURL)
		assert.Equal(t, 15*time.Second, c.httpClient.HTTPClient.Timeout)
		assert.Equal(t, 0, c.httpClient.RetryMax)
	})

	t.Run("trims trailing slashes and applies the timeout", func(t *testing.T) {
		c := NewClient("https://explorer.example/api///", WithTimeout(time.Second))

		assert.Equal(t, "https://explorer.example/api", c.baseURL)
		assert.Equal(t, time.Second, c.httpClient.HTTPClient.Timeout)
	})
}

func TestClient_GetAddress(t *testing.T) {
	t.Run("decodes the account summary", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v2/addresses/"+testAddress, r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			writeJSON(w, http.StatusOK, map[string]any{
				"hash":         testAddress,
				"coin_balance": "1000000000000000000",
			})
		})

		info, err := c.GetAddress(t.Context(), testAddress)
		require.NoError(t, err)
		assert.Equal(t, testAddress, info.Hash)
		require.NotNil(t, info.CoinBalance)
		assert.Equal(t, "1000000000000000000", *info.CoinBalance)
	})

	t.Run("relays the explorer message on a 404", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not found"})
		})

		_, err := c.GetAddress(t.Context(), testAddress)

		var apiErr *explorer.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Not found", apiErr.Message)
	})

	t.Run("treats a failure status in a 2xx envelope as an upstream failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"status": "0", "message": "Invalid address hash"})
		})

		_, err := c.GetAddress(t.Context(), testAddress)

		var apiErr *explorer.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Invalid address hash", apiErr.Message)
	})

	t.Run("accepts the success status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"status": "1", "coin_balance": "5"})
		})

		info, err := c.GetAddress(t.Context(), testAddress)
		require.NoError(t, err)
		assert.Equal(t, "5", *info.CoinBalance)
	})
}

func TestClient_GetBlocks(t *testing.T) {
	t.Run("decodes the first page", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/blocks", r.URL.Path)
			assert.Empty(t, r.URL.RawQuery)

			writeJSON(w, http.StatusOK, map[string]any{
				"items": []map[string]any{
					{"height": 100, "timestamp": "T1", "hash": "H1"},
					{"height": 99, "timestamp": "T0", "hash": "H0"},
				},
				"next_page_params": map[string]any{"block_number": 98, "items_count": 50},
			})
		})

		blocks, err := c.GetBlocks(t.Context())
		require.NoError(t, err)
		require.Len(t, blocks, 2)
		assert.Equal(t, explorer.Block{Height: "100", Timestamp: "T1", Hash: "H1"}, blocks[0])
	})

	t.Run("reports an empty body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		_, err := c.GetBlocks(t.Context())
		assert.ErrorIs(t, err, explorer.ErrEmptyResponse)
	})

	t.Run("reports a malformed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		})

		_, err := c.GetBlocks(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding explorer response")
	})

	t.Run("maps an HTML error page to an upstream failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>Bad Gateway</html>"))
		})

		_, err := c.GetBlocks(t.Context())

		var apiErr *explorer.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Empty(t, apiErr.Message)
	})
}

func TestClient_GetAddressTransactions(t *testing.T) {
	t.Run("returns the whole first page", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/addresses/"+testAddress+"/transactions", r.URL.Path)

			items := make([]map[string]any, 7)
			for i := range items {
				items[i] = map[string]any{"hash": "0xh", "value": "1", "timestamp": "T"}
			}
			writeJSON(w, http.StatusOK, map[string]any{"items": items})
		})

		txs, err := c.GetAddressTransactions(t.Context(), testAddress)
		require.NoError(t, err)
		assert.Len(t, txs, 7)
	})

	t.Run("returns a transport error when the explorer is down", func(t *testing.T) {
		srv := httptest.NewServer(nil)
		srv.Close()

		c := NewClient(srv.URL, WithTimeout(time.Second))

		txs, err := c.GetAddressTransactions(t.Context(), testAddress)
		assert.Error(t, err)
		assert.Nil(t, txs)
	})
}

func TestClient_Tracing(t *testing.T) {
	originalTracerProvider := otel.GetTracerProvider()
	defer otel.SetTracerProvider(originalTracerProvider)

	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Not found"})
	})

	_, err := c.GetBlocks(t.Context())
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "explorer.get", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("url.path", "/v2/blocks"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", http.StatusNotFound))
	assert.Equal(t, codes.Unset, spans[0].Status().Code, "an answered request is not a transport failure")
}

package prices

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPrice_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "idr", r.URL.Query().Get("vs_currencies"))
		fmt.Fprint(w, `{"bitcoin":{"idr":1500000000}}`)
	}))
	defer srv.Close()

	c := NewCoinGeckoClient(srv.URL, 10*time.Millisecond, 2)
	price, err := c.FetchPrice(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, 1_500_000_000.0, price)
}

func TestFetchPrice_UnknownCoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := NewCoinGeckoClient(srv.URL, 10*time.Millisecond, 0)
	_, err := c.FetchPrice(context.Background(), "no-such-coin")
	assert.Error(t, err)
}

func TestFetchPrice_RetriesOnRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"ethereum":{"idr":50000000}}`)
	}))
	defer srv.Close()

	c := NewCoinGeckoClient(srv.URL, 10*time.Millisecond, 2)
	price, err := c.FetchPrice(context.Background(), "ethereum")
	require.NoError(t, err)
	assert.Equal(t, 50_000_000.0, price)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchPrice_GivesUpAfterMaxRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewCoinGeckoClient(srv.URL, 5*time.Millisecond, 1)
	_, err := c.FetchPrice(context.Background(), "bitcoin")
	assert.Error(t, err)
}

func TestFetchPrice_ServerErrorNoRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCoinGeckoClient(srv.URL, 5*time.Millisecond, 3)
	_, err := c.FetchPrice(context.Background(), "bitcoin")
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

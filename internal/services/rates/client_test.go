package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker-backend/internal/services/rates"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("successful lookup echoes the pair", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "USD", r.URL.Query().Get("from"))
			assert.Equal(t, "SAR", r.URL.Query().Get("to"))
			w.Write([]byte(`{"rate": 3.75}`))
		}))
		defer srv.Close()

		client := rates.NewClient(srv.URL, zerolog.Nop())
		quote, err := client.Lookup(ctx, "USD", "SAR")
		require.NoError(t, err)
		assert.Equal(t, rates.Quote{From: "USD", To: "SAR", Rate: 3.75}, quote)
	})

	t.Run("same pair short-circuits without a request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}))
		defer srv.Close()

		client := rates.NewClient(srv.URL, zerolog.Nop())
		quote, err := client.Lookup(ctx, "SAR", "SAR")
		require.NoError(t, err)
		assert.Equal(t, rates.DefaultRate, quote.Rate)
	})

	t.Run("upstream error is surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := rates.NewClient(srv.URL, zerolog.Nop())
		_, err := client.Lookup(ctx, "USD", "SAR")
		assert.Error(t, err)
	})

	t.Run("non-positive rate rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rate": 0}`))
		}))
		defer srv.Close()

		client := rates.NewClient(srv.URL, zerolog.Nop())
		_, err := client.Lookup(ctx, "USD", "SAR")
		assert.Error(t, err)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := rates.NewClient(srv.URL, zerolog.Nop())
		_, err := client.Lookup(ctx, "USD", "SAR")
		assert.Error(t, err)
	})

	t.Run("no endpoint configured", func(t *testing.T) {
		client := rates.NewClient("", zerolog.Nop())
		_, err := client.Lookup(ctx, "USD", "SAR")
		assert.Error(t, err)
	})
}

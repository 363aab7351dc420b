package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangbc5/flare/pkg/webhook"
)

func TestClientPost(t *testing.T) {
	t.Parallel()

	t.Run("posts JSON payload", func(t *testing.T) {
		t.Parallel()

		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := webhook.NewClient()
		err := client.Post(context.Background(), server.URL, map[string]any{"msgtype": "text"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"msgtype": "text"}, got)
	})

	t.Run("non-2xx status is a rejection carrying status and body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errcode":310000,"errmsg":"sign not match"}`))
		}))
		defer server.Close()

		client := webhook.NewClient()
		err := client.Post(context.Background(), server.URL, map[string]string{"k": "v"})
		require.ErrorIs(t, err, webhook.ErrRejected)
		assert.Contains(t, err.Error(), "status 400")
		assert.Contains(t, err.Error(), "sign not match")
	})

	t.Run("invalid URLs fail before any request", func(t *testing.T) {
		t.Parallel()

		client := webhook.NewClient()
		for _, u := range []string{"", "ftp://example.com/hook", "https://"} {
			err := client.Post(context.Background(), u, map[string]string{"k": "v"})
			require.ErrorIs(t, err, webhook.ErrInvalidURL, "url %q", u)
		}
	})

	t.Run("unmarshalable payload fails before any request", func(t *testing.T) {
		t.Parallel()

		client := webhook.NewClient()
		err := client.Post(context.Background(), "https://example.com/hook", func() {})
		require.ErrorIs(t, err, webhook.ErrInvalidPayload)
	})

	t.Run("context cancellation aborts delivery", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := webhook.NewClient()
		err := client.Post(ctx, server.URL, map[string]string{"k": "v"})
		require.ErrorIs(t, err, webhook.ErrDeliveryFailed)
	})
}

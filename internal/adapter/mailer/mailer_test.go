package mailer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/niksmo/shopfront/internal/adapter/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOrderConfirmation(t *testing.T) {
	fields := map[string]string{
		"order_number":   "260901-0042",
		"region":         "Toronto",
		"total":          "113",
		"payment_method": "E-transfer",
	}

	t.Run("PostsTemplateParams", func(t *testing.T) {
		var got struct {
			ServiceID      string            `json:"service_id"`
			TemplateID     string            `json:"template_id"`
			UserID         string            `json:"user_id"`
			TemplateParams map[string]string `json:"template_params"`
		}

		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t,
					"application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			},
		))
		defer srv.Close()

		m := mailer.New(mailer.Config{
			Endpoint:   srv.URL,
			ServiceID:  "svc",
			TemplateID: "tpl",
			UserID:     "usr",
			Timeout:    time.Second,
		})

		require.NoError(t, m.SendOrderConfirmation(t.Context(), fields))

		assert.Equal(t, "svc", got.ServiceID)
		assert.Equal(t, "tpl", got.TemplateID)
		assert.Equal(t, "usr", got.UserID)
		assert.Equal(t, fields, got.TemplateParams)
	})

	t.Run("NonOKStatusIsError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		))
		defer srv.Close()

		m := mailer.New(mailer.Config{Endpoint: srv.URL})

		err := m.SendOrderConfirmation(t.Context(), fields)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("UnreachableRelay", func(t *testing.T) {
		m := mailer.New(mailer.Config{
			Endpoint: "http://127.0.0.1:1",
			Timeout:  time.Second,
		})

		err := m.SendOrderConfirmation(t.Context(), fields)
		assert.Error(t, err)
	})
}

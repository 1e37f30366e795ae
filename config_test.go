package quickpay

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	t.Run("hand built", func(t *testing.T) {
		cfg := &Config{Merchant: "89898978", Secret: "secret", APIKey: "apikey"}

		got := cfg.withDefaults()

		assert.Equal(t, DefaultURI, got.URI)
		assert.Equal(t, DefaultProtocol, got.Protocol)
		assert.Equal(t, "application/x-www-form-urlencoded", got.Headers["Content-Type"])
		assert.Equal(t, "application/json", got.Headers["Accept"])

		assert.Empty(t, cfg.URI)
		assert.Nil(t, cfg.Headers)
	})

	t.Run("caller values win", func(t *testing.T) {
		cfg := &Config{
			URI:      "https://example.test/api",
			Protocol: "6",
			Headers:  map[string]string{"accept": "text/xml", "X-Shop": "1"},
		}

		got := cfg.withDefaults()

		assert.Equal(t, "https://example.test/api", got.URI)
		assert.Equal(t, "6", got.Protocol)
		assert.Equal(t, "text/xml", got.Headers["Accept"])
		assert.Equal(t, "1", got.Headers["X-Shop"])
		assert.Equal(t, "application/x-www-form-urlencoded", got.Headers["Content-Type"])
		assert.Len(t, got.Headers, 4)
	})
}

func TestNew_HandBuiltConfig(t *testing.T) {
	cfg := &Config{Merchant: "89898978", Secret: "secret", APIKey: "apikey"}

	svc := New(cfg, WithHTTPClient(&http.Client{Transport: MockRoundTripper(func(req *http.Request) *http.Response {
		assert.Equal(t, DefaultURI, req.URL.String())
		assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

		form := readForm(t, req)
		assert.Equal(t, DefaultProtocol, form.Get("protocol"))

		return reply(http.StatusOK, okXML)(req)
	})}))

	_, err := svc.Authorize(context.Background(), testAuthorizeReq())
	require.NoError(t, err)

	cfg.URI = "https://changed.test"
	assert.Equal(t, DefaultURI, svc.config.URI)
}

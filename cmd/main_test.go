package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwnGnL/quickpay"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testEnv(uri string) *env {
	cfg := quickpay.NewConfig("89898978", "secret", "apikey")
	cfg.URI = uri

	return &env{AppEnv: "test", Config: cfg}
}

func TestRun(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "authorize", r.PostForm.Get("msgtype"))
			assert.Equal(t, "1", r.PostForm.Get("testmode"))
			assert.NotEmpty(t, r.PostForm.Get("md5check"))

			_, _ = w.Write([]byte(`<response><qpstat>000</qpstat><transaction>70396041</transaction></response>`))
		}))
		defer srv.Close()

		var out bytes.Buffer
		code := run(context.Background(), testEnv(srv.URL), &out, zap.NewNop())

		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "status = 200")
		assert.Contains(t, out.String(), "transaction = 70396041")
	})

	t.Run("Declined", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<response><qpstat>001</qpstat><qpstatmsg>Declined</qpstatmsg></response>`))
		}))
		defer srv.Close()

		core, logs := observer.New(zapcore.InfoLevel)

		var out bytes.Buffer
		code := run(context.Background(), testEnv(srv.URL), &out, zap.New(core))

		assert.Equal(t, 1, code)
		assert.Empty(t, out.String())
		assert.Equal(t, 1, logs.FilterMessage("authorize failed").Len())
	})
}

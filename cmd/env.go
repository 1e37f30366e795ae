package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/dwnGnL/quickpay"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type env struct {
	AppEnv     string
	RatePerSec float64
	Config     *quickpay.Config
}

// loadEnv reads .env when present; variables already set win.
func loadEnv() *env {
	_ = godotenv.Load()

	cfg := quickpay.NewConfig(
		os.Getenv("QUICKPAY_MERCHANT"),
		os.Getenv("QUICKPAY_SECRET"),
		os.Getenv("QUICKPAY_APIKEY"),
	)

	if uri := os.Getenv("QUICKPAY_URI"); uri != "" {
		cfg.URI = uri
	}

	cfg.Debug, _ = strconv.ParseBool(os.Getenv("QUICKPAY_DEBUG"))
	cfg.RequestTimeoutSec = atoi(os.Getenv("QUICKPAY_TIMEOUT_SEC"))

	rps, _ := strconv.ParseFloat(os.Getenv("QUICKPAY_RPS"), 64)

	return &env{
		AppEnv:     os.Getenv("APP_ENV"),
		RatePerSec: rps,
		Config:     cfg,
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// newOrderNumber returns a unique 20 character order number, the longest
// QuickPay accepts.
func newOrderNumber() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

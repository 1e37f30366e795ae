package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dwnGnL/quickpay"
	"github.com/dwnGnL/quickpay/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	e := loadEnv()

	logger.Init(e.AppEnv)

	code := run(context.Background(), e, os.Stdout, logger.L())

	logger.Sync()
	os.Exit(code)
}

// run performs one test-mode authorize and prints the response fields. It
// returns the process exit code.
func run(ctx context.Context, e *env, out io.Writer, log *zap.Logger, opts ...quickpay.Option) int {
	opts = append([]quickpay.Option{quickpay.WithLogger(log)}, opts...)
	if e.RatePerSec > 0 {
		opts = append(opts, quickpay.WithRateLimit(rate.Limit(e.RatePerSec), 1))
	}

	service := quickpay.New(e.Config, opts...)

	res, err := service.Authorize(ctx, quickpay.AuthorizeReq{
		OrderNumber:    newOrderNumber(),
		Amount:         100,
		Currency:       "DKK",
		CardNumber:     "4571000000000001",
		ExpirationDate: "1609",
		CVD:            "123",
		TestMode:       true,
	})
	if err != nil {
		log.Error("authorize failed", zap.Error(err))
		return 1
	}

	fmt.Fprintf(out, "status = %d\n", res.StatusCode)
	for key, value := range res.Fields {
		fmt.Fprintf(out, "%s = %s\n", key, value)
	}

	return 0
}

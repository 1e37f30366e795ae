package quickpay

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Option func(*Service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHTTPClient replaces the lazily built client. Timeouts in Config are
// ignored when it is set.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.httpClient = client
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithRateLimit makes every exchange wait for a token before it is sent.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Service) {
		s.limiter = rate.NewLimiter(limit, burst)
	}
}

package quickpay

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK          = "ok"
	outcomeApplication = "application_error"
	outcomeTransport   = "transport_error"
	outcomeParse       = "parse_error"
	outcomeNetwork     = "network_error"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the exchange collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "quickpay",
				Name:      "requests_total",
				Help:      "QuickPay API exchanges by message type and outcome",
			},
			[]string{"msgtype", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "quickpay",
				Name:      "request_duration_seconds",
				Help:      "QuickPay API round trip time",
				Buckets: []float64{
					0.05, 0.1, 0.2, 0.3, 0.5, 0.8,
					1.2, 2, 3, 5, 8, 13,
				},
			},
			[]string{"msgtype"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration)

	return m
}

func (m *Metrics) observe(msgType, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.RequestsTotal.WithLabelValues(msgType, outcome).Inc()
	m.RequestDuration.WithLabelValues(msgType).Observe(elapsed.Seconds())
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeOK
	}

	var qpErr *Error
	if !errors.As(err, &qpErr) {
		return outcomeNetwork
	}

	switch qpErr.Kind {
	case KindApplication:
		return outcomeApplication
	case KindParse:
		return outcomeParse
	default:
		return outcomeTransport
	}
}

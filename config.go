package quickpay

import "net/http"

const (
	DefaultURI      = "https://secure.quickpay.dk/api"
	DefaultProtocol = "7"

	Version = "0.0.1"
)

// Config holds the merchant credentials. Prefer NewConfig; New fills an empty
// URI, Protocol and any missing default header for a Config built by hand.
type Config struct {
	IdleConnTimeoutSec int
	RequestTimeoutSec  int
	Merchant           string
	Secret             string
	APIKey             string
	URI                string
	Protocol           string
	Headers            map[string]string
	Debug              bool
}

// NewConfig returns a Config for the production endpoint. Credentials are not
// checked here; the gateway rejects bad ones on the first request.
func NewConfig(merchant, secret, apiKey string) *Config {
	return &Config{
		Merchant: merchant,
		Secret:   secret,
		APIKey:   apiKey,
		URI:      DefaultURI,
		Protocol: DefaultProtocol,
		Headers:  DefaultHeaders(),
	}
}

// withDefaults returns a copy of c with the zero values replaced. Headers set
// in c win over the defaults regardless of key case.
func (c *Config) withDefaults() *Config {
	cfg := *c

	if cfg.URI == "" {
		cfg.URI = DefaultURI
	}
	if cfg.Protocol == "" {
		cfg.Protocol = DefaultProtocol
	}

	headers := http.Header{}
	for key, value := range DefaultHeaders() {
		headers.Set(key, value)
	}
	for key, value := range c.Headers {
		headers.Set(key, value)
	}

	cfg.Headers = make(map[string]string, len(headers))
	for key := range headers {
		cfg.Headers[key] = headers.Get(key)
	}

	return &cfg
}

func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":   "quickpay-go/" + Version,
		"Accept":       "application/json",
		"Content-Type": "application/x-www-form-urlencoded",
	}
}

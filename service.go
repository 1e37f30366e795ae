package quickpay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var maskedFields = []string{"secret", "apikey", "cardnumber", "cvd"}

// Service talks to the QuickPay API. New copies the Config, so later changes to
// it have no effect.
type Service struct {
	config  *Config
	logger  *zap.Logger
	metrics *Metrics
	limiter *rate.Limiter

	clientOnce sync.Once
	httpClient *http.Client
}

func New(config *Config, opts ...Option) *Service {
	s := &Service{
		config: config.withDefaults(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Authorize validates the card with the issuer and reserves the amount. The
// request is signed with md5check.
func (s *Service) Authorize(ctx context.Context, request AuthorizeReq) (*Response, error) {
	fields := request.fields(s.config)
	sign(authorizeChecksumOrder, fields)

	return s.execute(ctx, &sendParams{
		MsgType: msgAuthorize,
		Fields:  fields,
	})
}

// Capture withdraws part of or the whole reserved amount. Finalize closes the
// transaction for further partial captures.
func (s *Service) Capture(ctx context.Context, request CaptureReq) (*Response, error) {
	return s.execute(ctx, &sendParams{
		MsgType: msgCapture,
		Fields:  request.fields(),
	})
}

// Cancel deletes the reservation on the cardholder's account.
func (s *Service) Cancel(ctx context.Context, transaction string) (*Response, error) {
	return s.execute(ctx, &sendParams{
		MsgType: msgCancel,
		Fields:  cancelReq{Transaction: transaction}.fields(),
	})
}

// StatusFromOrder returns the state of a transaction together with its
// history.
func (s *Service) StatusFromOrder(ctx context.Context, transaction string) (*Response, error) {
	return s.execute(ctx, &sendParams{
		MsgType: msgStatus,
		Fields:  statusReq{Transaction: transaction}.fields(),
	})
}

func (s *Service) client() *http.Client {
	s.clientOnce.Do(func() {
		if s.httpClient != nil {
			return
		}

		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.IdleConnTimeout = time.Second * time.Duration(s.config.IdleConnTimeoutSec)

		s.httpClient = &http.Client{
			Transport: transport,
			Timeout:   time.Second * time.Duration(s.config.RequestTimeoutSec),
		}
	})

	return s.httpClient
}

func (s *Service) execute(ctx context.Context, inputs *sendParams) (res *Response, err error) {
	log := s.logger.With(zap.String("msgtype", inputs.MsgType))
	start := time.Now()

	defer func() {
		s.metrics.observe(inputs.MsgType, outcomeOf(err), time.Since(start))
	}()

	if s.limiter != nil {
		if err = s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("can't wait for rate limiter! Err: %w", err)
		}
	}

	if s.config.Debug {
		log.Debug("quickpay request",
			zap.String("uri", s.config.URI),
			zap.String("form", maskForm(inputs.Fields).Encode()),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URI, strings.NewReader(inputs.Fields.Encode()))
	if err != nil {
		return nil, fmt.Errorf("can't create request! Err: %w", err)
	}

	for key, value := range s.config.Headers {
		req.Header.Set(key, value)
	}
	for key, value := range inputs.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client().Do(req)
	if err != nil {
		log.Error("quickpay request failed", zap.Error(err))
		return nil, fmt.Errorf("can't do request! Err: %w", err)
	}
	defer resp.Body.Close()

	inputs.HttpCode = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't read response body! Err: %w", err)
	}

	if s.config.Debug {
		log.Debug("quickpay response",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
	}

	res, err = classify(resp.StatusCode, respBody)
	if err != nil {
		log.Warn("quickpay exchange rejected",
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return nil, err
	}

	res.StatusCode = resp.StatusCode
	res.Header = resp.Header

	log.Info("quickpay exchange",
		zap.Int("status", resp.StatusCode),
		zap.String("qpstat", res.QPStat),
		zap.String("transaction", res.Transaction()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// classify turns one HTTP answer into a Response or an *Error. Only 200 and
// 201 bodies are inspected.
func classify(status int, body []byte) (*Response, error) {
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, transportError(status)
	}

	res, err := parseResponse(body)
	if err != nil {
		return nil, &Error{
			Kind:    KindParse,
			Message: "QuickPay error: can't parse response",
			Err:     err,
		}
	}

	if res.QPStat != QPStatOK {
		return nil, applicationError(res)
	}

	return res, nil
}

func maskForm(fields url.Values) url.Values {
	masked := make(url.Values, len(fields))
	for key, values := range fields {
		masked[key] = values
	}

	for _, key := range maskedFields {
		if masked.Has(key) {
			masked.Set(key, "***")
		}
	}

	return masked
}

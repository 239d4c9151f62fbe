package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/pkg/jwt"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const maxBodyBytes = 1 << 20

var errBadBaseURL = errs.New("booking API base URL must be absolute")

// Client talks to the upstream booking API. Every call passes a shared rate limiter
// and circuit breaker; the caller's bearer token is forwarded when present.
type Client struct {
	base    *url.URL
	hc      *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errs.Wrap(err, "parse booking API base URL")
	}
	if !base.IsAbs() {
		return nil, errBadBaseURL
	}

	c := &Client{
		base:    base,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
		logger:  logger,
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "booking-api",
		Timeout: cfg.BreakerOpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// client-side rejections say nothing about upstream health
		IsSuccessful: func(err error) bool {
			return err == nil || IsKind(err, KindNotFound) || IsKind(err, KindValidation)
		},
	})
	return c, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return wrapUpstreamErr(c.logger, KindUnavailable, 0, "rate limit wait "+path, err)
	}

	res, err := c.cb.Execute(func() (any, error) {
		return c.roundTrip(ctx, method, path, query, in)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return wrapUpstreamErr(c.logger, KindUnavailable, 0, "circuit open for "+path, err)
		}
		return err
	}

	body, _ := res.([]byte)
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return wrapUpstreamErr(c.logger, KindFailure, http.StatusOK, "decode response of "+path, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, wrapUpstreamErr(c.logger, KindFailure, 0, "encode request for "+path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, wrapUpstreamErr(c.logger, KindFailure, 0, "build request for "+path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := jwt.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, wrapUpstreamErr(c.logger, KindUnavailable, 0, method+" "+path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, wrapUpstreamErr(c.logger, KindUnavailable, resp.StatusCode, "read response of "+path, err)
	}

	switch status := resp.StatusCode; {
	case status >= 200 && status < 300:
		return body, nil
	case status == http.StatusNotFound:
		return nil, wrapUpstreamErr(c.logger, KindNotFound, status, method+" "+path, nil)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return nil, validationErr(c.logger, status, method+" "+path, body)
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return nil, wrapUpstreamErr(c.logger, KindUnavailable, status, method+" "+path, nil)
	default:
		return nil, wrapUpstreamErr(c.logger, KindFailure, status, method+" "+path, errors.New(snippet(body)))
	}
}

type validationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func validationErr(logger *slog.Logger, status int, msg string, body []byte) error {
	var vb validationBody
	_ = json.Unmarshal(body, &vb)
	if vb.Message != "" {
		msg = msg + ": " + vb.Message
	}
	err := wrapUpstreamErr(logger, KindValidation, status, msg, nil)
	var ue *UpstreamError
	if errors.As(err, &ue) {
		ue.Fields = vb.Errors
	}
	return err
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max] + "..."
	}
	if s == "" {
		return "empty response body"
	}
	return s
}

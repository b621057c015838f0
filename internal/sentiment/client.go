package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is the hosted prediction API.
const DefaultEndpoint = "https://sentiment-backend-c4tc.onrender.com/api/predict/"

const maxResponseBytes = 1 << 20

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Sentiment *string `json:"sentiment"`
}

type validationBody struct {
	Text []string `json:"text"`
}

// Client talks to the remote prediction endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	timeout  time.Duration
	log      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient validates endpoint and returns a Client for it.
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint %q: missing host", endpoint)
	}

	c := &Client{
		endpoint: u.String(),
		http:     &http.Client{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		// copy so a client passed to WithHTTPClient is left untouched
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// Endpoint returns the URL predictions are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Predict posts text and returns the label from the response.
func (c *Client) Predict(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return "", &RequestError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &RequestError{Op: "send", Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := c.log.With(slog.String("request_id", requestID))
	start := time.Now()
	log.Debug("posting prediction request", slog.String("endpoint", c.endpoint), slog.Int("chars", len(text)))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("prediction request failed", slog.Any("error", err))
		return "", &RequestError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &RequestError{Op: "decode", StatusCode: resp.StatusCode, Err: err}
	}

	log.Debug("prediction response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var vb validationBody
		if json.Unmarshal(raw, &vb) == nil && len(vb.Text) > 0 {
			return "", &ValidationError{StatusCode: resp.StatusCode, Messages: vb.Text}
		}
		return "", &RequestError{Op: "status", StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var pr predictResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return "", &RequestError{Op: "decode", StatusCode: resp.StatusCode, Err: err}
	}
	if pr.Sentiment == nil {
		return "", &RequestError{Op: "decode", StatusCode: resp.StatusCode, Err: errors.New("response has no sentiment field")}
	}
	return *pr.Sentiment, nil
}

package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ironsmile/musicsearch/src/metrics"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 8 * 1024 * 1024
)

// Options configure a Client. Only UserAgent is required.
type Options struct {
	// UserAgent is sent with every request. MusicBrainz and Wikimedia both ask
	// applications to identify themselves with a meaningful one.
	UserAgent string

	// Timeout is the time every single request is allowed to take.
	Timeout time.Duration

	// MaxBodyBytes is the largest response body which will be read.
	MaxBodyBytes int64

	// HTTPClient is used for making the requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Metrics receives an observation for every request. May be nil.
	Metrics *metrics.Metrics

	// Logger is used for debug logging of every request. May be nil.
	Logger *log.Logger
}

// Client is a Fetcher which uses HTTP. It does no caching and no retries.
// It is safe for concurrent use.
type Client struct {
	userAgent    string
	timeout      time.Duration
	maxBodyBytes int64
	httpClient   *http.Client
	metrics      *metrics.Metrics
	log          *log.Logger
}

// NewClient returns a Client configured with `opts`.
func NewClient(opts Options) *Client {
	c := &Client{
		userAgent:    opts.UserAgent,
		timeout:      opts.Timeout,
		maxBodyBytes: opts.MaxBodyBytes,
		httpClient:   opts.HTTPClient,
		metrics:      opts.Metrics,
		log:          opts.Logger,
	}

	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.maxBodyBytes <= 0 {
		c.maxBodyBytes = defaultMaxBodyBytes
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}

	return c
}

// Fetch implements Fetcher.
func (c *Client) Fetch(
	ctx context.Context,
	target Target,
	policy Policy,
	dst any,
) (bool, error) {
	started := time.Now()

	found, outcome, err := c.fetch(ctx, target, policy, dst)

	took := time.Since(started)
	c.metrics.ObserveLookup(target.Source, outcome, took)
	c.log.Debug("upstream lookup",
		"source", target.Source,
		"policy", policy,
		"outcome", outcome,
		"took", took,
	)

	return found, err
}

func (c *Client) fetch(
	ctx context.Context,
	target Target,
	policy Policy,
	dst any,
) (bool, string, error) {
	reqURL, err := target.URL()
	if err != nil {
		return false, metrics.OutcomeError, err
	}

	newErr := func(statusCode int, cause error) *Error {
		return &Error{
			Source:     target.Source,
			URL:        reqURL.String(),
			StatusCode: statusCode,
			Err:        cause,
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// The call's own deadline is what makes a request "timed out". Parent
	// cancellation is always an error.
	timedOut := func() bool {
		return callCtx.Err() != nil && ctx.Err() == nil
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return false, metrics.OutcomeError, newErr(0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if timedOut() {
			return c.timeoutResult(policy, newErr(0, err))
		}
		return false, metrics.OutcomeError, newErr(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so that the connection could be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		if policy == Required {
			return false, metrics.OutcomeNotFound, newErr(resp.StatusCode, ErrNotFound)
		}
		return false, metrics.OutcomeNotFound, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		if timedOut() {
			return c.timeoutResult(policy, newErr(resp.StatusCode, err))
		}
		return false, metrics.OutcomeError, newErr(
			resp.StatusCode,
			fmt.Errorf("reading response: %w", err),
		)
	}

	if int64(len(body)) > c.maxBodyBytes {
		return false, metrics.OutcomeError, newErr(resp.StatusCode, ErrResponseTooBig)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return false, metrics.OutcomeError, newErr(
			resp.StatusCode,
			fmt.Errorf("decoding JSON response: %w", err),
		)
	}

	return true, metrics.OutcomeOK, nil
}

func (c *Client) timeoutResult(policy Policy, err *Error) (bool, string, error) {
	if policy == BestEffort {
		return false, metrics.OutcomeTimeout, nil
	}

	if !errors.Is(err, context.DeadlineExceeded) {
		err.Err = fmt.Errorf("%w: %w", context.DeadlineExceeded, err.Err)
	}
	return false, metrics.OutcomeTimeout, err
}

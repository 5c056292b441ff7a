package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bloom-vcpkg/internal/shared"
)

const defaultHTTPTimeout = 60 * time.Second
const defaultHTTPRetries = 3
const defaultHTTPRetryDelay = 200 * time.Millisecond
const maxHTTPRetryDelay = 2 * time.Second
const maxErrorBody = 512

type httpRetryConfig struct {
	timeout   time.Duration
	retries   int
	baseDelay time.Duration
}

func normalizeHTTPConfig(timeoutSec int, retries int, delayMs int) httpRetryConfig {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	retryCount := retries
	if retryCount <= 0 {
		retryCount = defaultHTTPRetries
	}
	baseDelay := time.Duration(delayMs) * time.Millisecond
	if baseDelay <= 0 {
		baseDelay = defaultHTTPRetryDelay
	}
	return httpRetryConfig{
		timeout:   timeout,
		retries:   retryCount,
		baseDelay: baseDelay,
	}
}

// fetchBytes GETs url and returns the body of a 2xx response. A 404 is
// reported as NotFound, other failures as Internal.
func fetchBytes(ctx context.Context, url string, cfg httpRetryConfig) ([]byte, error) {
	resp, err := doRequest(ctx, url, cfg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		code := errbuilder.CodeInternal
		if resp.StatusCode == http.StatusNotFound {
			code = errbuilder.CodeNotFound
		}
		return nil, errbuilder.New().
			WithCode(code).
			WithMsg("failed to fetch " + url).
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, url, strings.TrimSpace(string(body))))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read response from " + url).
			WithCause(err)
	}
	return data, nil
}

func doRequest(ctx context.Context, url string, cfg httpRetryConfig) (*http.Response, error) {
	client := &http.Client{Timeout: cfg.timeout}
	var lastErr error
	for attempt := 0; attempt < cfg.retries; attempt++ {
		if ctx.Err() != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request canceled").
				WithCause(ctx.Err())
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create request").
				WithCause(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("request canceled").
					WithCause(ctx.Err())
			}
			lastErr = err
			if attempt < cfg.retries-1 {
				time.Sleep(httpRetryDelay(attempt, cfg))
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request failed").
				WithCause(err)
		}
		if (resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests) && attempt < cfg.retries-1 {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			lastErr = shared.HTTPStatusError(resp.StatusCode, url)
			time.Sleep(httpRetryDelay(attempt, cfg))
			continue
		}
		return resp, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("request failed")
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("request failed").
		WithCause(lastErr)
}

func httpRetryDelay(attempt int, cfg httpRetryConfig) time.Duration {
	delay := cfg.baseDelay * time.Duration(1<<attempt)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}

// internal/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const maxRetries = 3

// Fixed backoff schedule between retry attempts, indexed by attempt number.
var backoffSchedule = [maxRetries]time.Duration{
	1 * time.Second,
	2 * time.Second,
	4 * time.Second,
}

// Client talks to a Mealie instance. It owns a connection pool, fixed
// auth headers, and the retry policy every convenience method goes
// through. Base URL and token come from the environment unless
// overridden with options.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	sleep      func(time.Duration)
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: os.Getenv("MEALIE_URL"),
		token:   os.Getenv("MEALIE_API_TOKEN"),
		sleep:   time.Sleep,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("MEALIE_URL is required (e.g. https://mealie.example.com)")
	}
	if c.token == "" {
		return nil, fmt.Errorf("MEALIE_API_TOKEN is required")
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c, nil
}

// Close releases idle connections held by the pool.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	return fullURL
}

// request performs one logical call with retries. Network-level failures
// and 5xx responses are retried up to the attempt budget with the fixed
// backoff schedule; 4xx responses fail immediately. On success the body
// is parsed as JSON when possible, returned as a raw string otherwise,
// and nil when empty.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) (any, error) {
	fullURL := c.buildURL(path, query)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(body))
		if err != nil {
			return nil, &TransportError{Message: fmt.Sprintf("Unexpected error: %v", err), Err: err}
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = &TransportError{Message: fmt.Sprintf("Request failed: %v", err), Err: err}
			if attempt < maxRetries {
				log.Warn().Str("method", method).Str("path", path).Int("attempt", attempt+1).
					Err(err).Msg("request failed, retrying")
				c.sleep(backoffSchedule[attempt])
				continue
			}
			return nil, lastErr
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = &TransportError{Message: fmt.Sprintf("Request failed: %v", readErr), Err: readErr}
			if attempt < maxRetries {
				c.sleep(backoffSchedule[attempt])
				continue
			}
			return nil, lastErr
		}

		if resp.StatusCode >= 500 {
			lastErr = newHTTPError(resp.StatusCode, string(respBody))
			if attempt < maxRetries {
				log.Warn().Str("method", method).Str("path", path).Int("attempt", attempt+1).
					Int("status", resp.StatusCode).Msg("server error, retrying")
				c.sleep(backoffSchedule[attempt])
				continue
			}
			return nil, lastErr
		}

		// 4xx indicates a malformed request, never retried.
		if resp.StatusCode >= 400 {
			return nil, newHTTPError(resp.StatusCode, string(respBody))
		}

		if len(respBody) == 0 {
			return nil, nil
		}

		var parsed any
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return string(respBody), nil
		}
		return parsed, nil
	}

	return nil, lastErr
}

func (c *Client) requestJSON(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Message: fmt.Sprintf("Unexpected error: %v", err), Err: err}
		}
	}
	return c.request(ctx, method, path, query, payload, "application/json")
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.request(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.requestJSON(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.requestJSON(ctx, http.MethodPut, path, nil, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.requestJSON(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.request(ctx, http.MethodDelete, path, nil, nil, "")
}

// upload sends a multipart form with one file part plus extra fields.
// The multipart body is built once and replayed across retries.
func (c *Client) upload(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, data []byte) (any, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, &TransportError{Message: fmt.Sprintf("Unexpected error: %v", err), Err: err}
		}
	}
	part, err := writer.CreateFormFile(fileField, fileName)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("Unexpected error: %v", err), Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("Unexpected error: %v", err), Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("Unexpected error: %v", err), Err: err}
	}
	return c.request(ctx, method, path, nil, buf.Bytes(), writer.FormDataContentType())
}

// TestConnection verifies the configured instance is reachable. Any
// non-error response counts as success.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.Get(ctx, "/api/app/about", nil); err != nil {
		return fmt.Errorf("Connection test failed: %w", err)
	}
	return nil
}

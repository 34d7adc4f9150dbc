package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/careeradvance/jobboard-gateway/internal/config"
)

// Client wraps all HTTP access to the PHP backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new upstream client.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// APIError represents a failure reported by the upstream backend, either a
// non-2xx status or a 2xx envelope with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error [%d]: %s", e.StatusCode, e.Message)
}

func (c *Client) Get(ctx context.Context, creds Credentials, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, creds, http.MethodGet, path, query, "", nil)
}

func (c *Client) PostJSON(ctx context.Context, creds Credentials, path string, body interface{}) (*Envelope, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, creds, http.MethodPost, path, nil, "application/json", bytes.NewReader(encoded))
}

func (c *Client) PutJSON(ctx context.Context, creds Credentials, path string, body interface{}) (*Envelope, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, creds, http.MethodPut, path, nil, "application/json", bytes.NewReader(encoded))
}

func (c *Client) Delete(ctx context.Context, creds Credentials, path string) (*Envelope, error) {
	return c.do(ctx, creds, http.MethodDelete, path, nil, "", nil)
}

func (c *Client) PostMultipart(ctx context.Context, creds Credentials, path string, form *Form) (*Envelope, error) {
	body, contentType, err := form.Encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, creds, http.MethodPost, path, nil, contentType, body)
}

func (c *Client) do(ctx context.Context, creds Credentials, method, path string, query url.Values, contentType string, body io.Reader) (*Envelope, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	creds.apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call upstream %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.StatusCode),
		}
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = "Internal server error"
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	return env, nil
}

// errorMessage digs a human-readable message out of an error body, falling
// back to the HTTP status text when the body is not a recognizable envelope.
func errorMessage(raw []byte, statusCode int) string {
	if env, err := decodeEnvelope(raw); err == nil && env.Message != "" {
		return env.Message
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "Internal server error"
}

// Form accumulates multipart form content for file-bearing posts.
type Form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func NewForm() *Form {
	f := &Form{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

func (f *Form) WriteField(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.writer.WriteField(name, value)
}

func (f *Form) WriteFile(field, filename string, r io.Reader) {
	if f.err != nil {
		return
	}
	part, err := f.writer.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = io.Copy(part, r)
}

// Encode finalizes the form and returns the body with its content type.
func (f *Form) Encode() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", fmt.Errorf("build multipart form: %w", f.err)
	}
	if err := f.writer.Close(); err != nil {
		return nil, "", fmt.Errorf("build multipart form: %w", err)
	}
	return &f.buf, f.writer.FormDataContentType(), nil
}

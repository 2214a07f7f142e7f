// Package api implements the HTTP client for the Aktus document pipeline
// API. Each operation maps to exactly one request: there is no retry,
// backoff, or caching layer, and a failure is surfaced immediately.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://pat.aktus.ai"

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// Client issues requests against a single base URL, attaching the bearer
// token from the current session when one is set.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a Client for the given base URL and session token. An empty
// base URL selects the production endpoint; an empty token means the client
// is unauthenticated until Login succeeds.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: DefaultTimeout},
	}
}

// BaseURL returns the normalized base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the session token currently attached to requests.
func (c *Client) Token() string {
	return c.token
}

// Login exchanges an API key for a session token. On success the token is
// attached to all subsequent requests on this client.
func (c *Client) Login(ctx context.Context, apiKey string) (*LoginResponse, error) {
	loginReq := LoginRequest{APIKey: apiKey}
	if err := loginReq.Validate(); err != nil {
		return nil, &AuthError{Message: "API key is required", Cause: err}
	}

	body, err := json.Marshal(loginReq)
	if err != nil {
		return nil, &AuthError{Message: "failed to encode login request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, &AuthError{Message: "failed to create login request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &AuthError{Message: "login request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	var out LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &AuthError{Message: "invalid response from server", Cause: err}
	}
	if out.Token == "" {
		return nil, &AuthError{Message: "server returned no session token"}
	}

	c.token = out.Token
	return &out, nil
}

// Logout terminates the session server-side and drops the client's token.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/logout", nil)
	if err != nil {
		return &RequestError{Message: "failed to create logout request", Cause: err}
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &RequestError{Message: "logout request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return &RequestError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	c.token = ""
	return nil
}

// Upload sends one PDF as a multipart request and returns the
// server-assigned document identifier. The session check and the local PDF
// check both run before any bytes go over the wire.
func (c *Client) Upload(ctx context.Context, filePath, provider string) (*UploadResponse, error) {
	if c.token == "" {
		return nil, &AuthError{Message: "not logged in"}
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, &UploadError{Filename: filePath, Message: "file not found", Cause: err}
	}
	if info.IsDir() || !strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		return nil, &UploadError{Filename: filePath, Message: "file must be a PDF"}
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, &UploadError{Filename: filePath, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filePath)))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, &UploadError{Filename: filePath, Message: "failed to build multipart body", Cause: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, &UploadError{Filename: filePath, Message: "failed to read file", Cause: err}
	}
	if provider != "" {
		if err := writer.WriteField("provider_name", provider); err != nil {
			return nil, &UploadError{Filename: filePath, Message: "failed to build multipart body", Cause: err}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &UploadError{Filename: filePath, Message: "failed to build multipart body", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/documents", &body)
	if err != nil {
		return nil, &UploadError{Filename: filePath, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &UploadError{Filename: filePath, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}
	if resp.StatusCode >= 300 {
		return nil, &UploadError{Filename: filePath, StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	var out UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &UploadError{Filename: filePath, Message: "invalid response from server", Cause: err}
	}
	return &out, nil
}

// List returns one page of uploaded documents in server order.
func (c *Client) List(ctx context.Context, skip, limit int) (*ListResponse, error) {
	if c.token == "" {
		return nil, &AuthError{Message: "not logged in"}
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/documents?"+query.Encode(), nil)
	if err != nil {
		return nil, &RequestError{Message: "failed to create request", Cause: err}
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &RequestError{Message: "list request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}
	if resp.StatusCode >= 300 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	var out ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &RequestError{Message: "invalid response from server", Cause: err}
	}
	return &out, nil
}

// Portfolios fetches the portfolio records associated with an uploaded
// filename. A 404 from the server becomes a NotFoundError.
func (c *Client) Portfolios(ctx context.Context, filename string) (*PortfoliosResponse, error) {
	if c.token == "" {
		return nil, &AuthError{Message: "not logged in"}
	}

	endpoint := c.baseURL + "/api/v1/documents/by-filename/" + url.PathEscape(filename) + "/portfolios"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RequestError{Message: "failed to create request", Cause: err}
	}
	c.authorize(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &RequestError{Message: "portfolio request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Filename: filename}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	case resp.StatusCode >= 300:
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	var out PortfoliosResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &RequestError{Message: "invalid response from server", Cause: err}
	}
	return &out, nil
}

// authorize attaches the bearer token when present.
func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// serverMessage extracts a human-readable error from a response body,
// checking the "detail" key first, then "message".
func serverMessage(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil {
		return "Unknown error"
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return "Unknown error"
}

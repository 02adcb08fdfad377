package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/guardiantix/authkit/internal/common"
	"github.com/guardiantix/authkit/internal/logging"
)

// DefaultTimeout bounds every resource API call so a stalled upstream
// degrades to an error instead of blocking the request.
const DefaultTimeout = 10 * time.Second

// HTTPClient is the concrete Client speaking JSON over HTTP to the resource
// API, mirroring its /api contract.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient builds a client for the given base URL. A zero timeout
// selects DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*LoginResponse, error) {
	body := map[string]string{"identifier": identifier, "password": password}

	out := &LoginResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/login", body, "", http.StatusOK, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	out := &CreateUserResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/users", req, "", http.StatusCreated, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CheckSession(ctx context.Context, token string) (*SessionCheck, error) {
	out := &SessionCheck{}
	if err := c.do(ctx, http.MethodGet, "/api/check-session", nil, token, http.StatusOK, out); err != nil {
		return nil, err
	}
	return out, nil
}

// do performs one request/response cycle. A transport-level failure wraps
// common.ErrUpstreamUnavailable; a status other than wantStatus becomes an
// *APIError carrying the body's "error" field when it parses.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, token string, wantStatus int, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "resource API request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != wantStatus {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts the "error" field from a response body, tolerating
// unparsable bodies.
func errorMessage(data []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Error
}

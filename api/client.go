package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/areahq/areactl/logger"
	"github.com/areahq/areactl/session"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client is the single transport to the backend. It owns the base URL, the
// auth session and the error mapping; the per area services (auth, catalog,
// workflows, ...) are thin layers over Client.do.
type Client struct {
	baseUrl string
	session *session.Session
	http    *http.Client
}

func NewClient(baseUrl string, sess *session.Session) *Client {
	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		session: sess,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) Session() *session.Session {
	return c.session
}

// do performs one request and decodes the response into out when out is non
// nil. Any non 2xx status is mapped to the package error taxonomy; requests
// are never retried here.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	start := time.Now()
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reqBody)
	if err != nil {
		return NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		recordRequest(ctx, method+" "+path, "transport_error", start)
		logger.Error("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return NetworkError{Err: err}
	}
	defer resp.Body.Close()
	recordRequest(ctx, method+" "+path, strconv.Itoa(resp.StatusCode), start)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NetworkError{Err: err}
	}
	logger.Debug("request done", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatus(resp.StatusCode, path, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) mapStatus(status int, path string, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return AuthRequiredError{}
	case http.StatusForbidden:
		return ForbiddenError{Path: path}
	case http.StatusNotFound:
		return NotFoundError{Path: path}
	case http.StatusUnprocessableEntity:
		return ValidationError{Detail: errorDetail(body)}
	case http.StatusBadRequest:
		return ConflictError{Detail: errorDetail(body)}
	}
	return NetworkError{Err: fmt.Errorf("unexpected status %d from %s", status, path)}
}

// errorDetail pulls the human readable message out of an error body. The
// backend answers either {"detail": ...} or {"error": ...}; 422 details can
// be a list of field errors.
func errorDetail(body []byte) string {
	var payload struct {
		Detail any    `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}
	if payload.Error != "" {
		return payload.Error
	}
	switch d := payload.Detail.(type) {
	case string:
		return d
	case nil:
		return string(body)
	default:
		out, err := json.Marshal(d)
		if err != nil {
			return string(body)
		}
		return string(out)
	}
}

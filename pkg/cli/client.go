package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"insertkit/internal/api"
	"insertkit/internal/columnlist"
	"insertkit/internal/sqlinsert"
)

// Client calls a remote insertkit server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.HTTPStatus, e.Message)
}

// CheckError returns an *APIError for non-2xx responses. The body is read
// but not closed.
func CheckError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{HTTPStatus: resp.StatusCode}
	var e api.Error
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		apiErr.Code = e.Kind
		apiErr.Message = e.Message
		return apiErr
	}
	apiErr.Message = string(bytes.TrimSpace(body))
	return apiErr
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL(c.BaseURL, path), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := CheckError(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) Parse(ctx context.Context, sql string) (*sqlinsert.ParsedInsert, error) {
	var out api.ParseResponse
	if err := c.post(ctx, "/insert/parse", api.ParseRequest{SQL: sql}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Build(ctx context.Context, table string, pairs []sqlinsert.Pair) (string, error) {
	var out api.BuildResponse
	if err := c.post(ctx, "/insert/build", api.BuildRequest{TableName: table, Pairs: pairs}, &out); err != nil {
		return "", err
	}
	return out.SQL, nil
}

func (c *Client) Format(ctx context.Context, values []string) ([]string, error) {
	var out api.FormatResponse
	if err := c.post(ctx, "/values/format", api.FormatRequest{Values: values}, &out); err != nil {
		return nil, err
	}
	return out.Literals, nil
}

func (c *Client) Convert(ctx context.Context, text string) (columnlist.Result, error) {
	var out api.ConvertResponse
	if err := c.post(ctx, "/columns/convert", api.ConvertRequest{Text: text}, &out); err != nil {
		return columnlist.Result{}, err
	}
	return out, nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the server rejects the session token,
// which means the session expired (or was never valid) and the user has to
// log in again.
var ErrUnauthorized = errors.New("session expired or invalid")

// Credentials is the body of register and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token issued by the server.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Entry mirrors the server's journal entry JSON.
type Entry struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	Content string    `json:"content"`
	Mood    string    `json:"mood"`
	Date    time.Time `json:"date"`
}

// EntryRequest is the body of create and update requests.
type EntryRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client is the HTTP client for the journal REST API. It holds the session
// token and attaches it as a bearer header to every protected request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken stores the session token used for protected requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ClearToken drops the held session token. Purely local; the server keeps
// no session state to clear.
func (c *Client) ClearToken() {
	c.token = ""
}

func (c *Client) Register(ctx context.Context, creds Credentials) error {
	return c.doRequest(ctx, http.MethodPost, "/api/auth/register", creds, nil)
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateEntry(ctx context.Context, req EntryRequest) (*Entry, error) {
	var entry Entry
	if err := c.doRequest(ctx, http.MethodPost, "/api/journals", req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) ListEntries(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := c.doRequest(ctx, http.MethodGet, "/api/journals", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) UpdateEntry(ctx context.Context, entryID string, req EntryRequest) (*Entry, error) {
	var entry Entry
	if err := c.doRequest(ctx, http.MethodPut, "/api/journals/"+entryID, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) DeleteEntry(ctx context.Context, entryID string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/journals/"+entryID, nil, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// A rejected token on a protected call means the session is over;
		// a 401 from login itself is just bad credentials.
		if resp.StatusCode == http.StatusUnauthorized && c.token != "" {
			return ErrUnauthorized
		}
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return errors.New(errResp.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

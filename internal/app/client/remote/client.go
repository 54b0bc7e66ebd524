// Package remote - HTTP+JSON реализация удаленного хранилища для клиента.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

const userAgent = "ContentHub-Client/1.0"

type Client struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient создает клиента сервера. baseURL включает схему.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		baseURL: baseURL,
		log:     log.With("component", "remote_client"),
	}
}

// SetToken устанавливает токен сессии; пустая строка снимает авторизацию.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// HealthCheck проверяет доступность сервера.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, nil, nil); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

// do выполняет запрос и декодирует JSON-ответ в out, если он не nil.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	return c.parseResponse(resp, out)
}

func (c *Client) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("response received", "status", resp.StatusCode, "size", len(body))

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, body)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/fitjournal/pkg/api"
)

// DefaultTimeout ограничивает время одного запроса; истечение считается обычной ошибкой отправки
const DefaultTimeout = 30 * time.Second

// Response результат обращения к удаленному ресурсу.
// Статус вне диапазона 2xx не превращается в ошибку: решение о повторе принимает очередь.
type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Status int             `json:"status"`
}

// OK сообщает, что статус в диапазоне 200-299
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// Client представляет HTTP клиент для взаимодействия с сервером журнала
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Create отправляет POST на endpoint
func (c *Client) Create(ctx context.Context, endpoint string, payload json.RawMessage) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, endpoint, payload)
}

// Update отправляет PUT на endpoint
func (c *Client) Update(ctx context.Context, endpoint string, payload json.RawMessage) (*Response, error) {
	return c.doRequest(ctx, http.MethodPut, endpoint, payload)
}

// Delete отправляет DELETE на endpoint
func (c *Client) Delete(ctx context.Context, endpoint string, payload json.RawMessage) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, endpoint, payload)
}

// Get читает ресурс; params добавляются в query string
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]any) (*Response, error) {
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, fmt.Sprint(v))
		}
		endpoint += "?" + q.Encode()
	}
	return c.doRequest(ctx, http.MethodGet, endpoint, nil)
}

// Ping проверяет доступность сервера через health endpoint
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, api.HealthPath, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("health check failed with status %d", resp.Status)
	}
	return nil
}

// doRequest выполняет HTTP запрос и возвращает статус вместе с телом ответа
func (c *Client) doRequest(ctx context.Context, method, path string, body json.RawMessage) (*Response, error) {
	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	result := &Response{Status: resp.StatusCode}
	if len(bytes.TrimSpace(respBody)) > 0 {
		if json.Valid(respBody) {
			result.Data = respBody
		} else {
			// Не-JSON тело (например, текст ошибки прокси) сохраняем строкой
			quoted, _ := json.Marshal(string(respBody))
			result.Data = quoted
		}
	}

	return result, nil
}

// ErrorMessage извлекает текст ошибки из тела неуспешного ответа
func (r *Response) ErrorMessage() string {
	if r == nil {
		return ""
	}
	var errResp api.ErrorResponse
	if err := json.Unmarshal(r.Data, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
		if errResp.Message != "" {
			return errResp.Message
		}
		return errResp.Error
	}
	var text string
	if err := json.Unmarshal(r.Data, &text); err == nil {
		return text
	}
	return http.StatusText(r.Status)
}

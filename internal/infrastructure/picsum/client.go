package picsum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pocketapp/internal/domain/explore"

	"golang.org/x/exp/slog"
)

const (
	DefaultBaseURL = "https://picsum.photos"
	defaultTimeout = 30 * time.Second
)

// Client получает метаданные изображений из публичного API picsum.
type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 2,
			},
		},
		log:       log.With("component", "picsum_client"),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "PocketApp-Client/1.0",
	}
}

// Info возвращает метаданные изображения по идентификатору.
func (c *Client) Info(ctx context.Context, id int) (explore.Image, error) {
	var img explore.Image

	resp, err := c.doRequest(ctx, "/id/"+strconv.Itoa(id)+"/info")
	if err != nil {
		return img, err
	}

	if err := c.parseResponse(resp, &img); err != nil {
		return img, err
	}
	return img, nil
}

// HealthCheck проверяет доступность API
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.doRequest(ctx, "/id/0/info")
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

func (c *Client) doRequest(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("Отправка запроса", "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return resp, nil
}

func (c *Client) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	c.log.Debug("Получен ответ", "status", resp.StatusCode, "size", len(body))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%w: %v", explore.ErrMalformedInfo, err)
		}
	}
	return nil
}

package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/ports"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики обращений к API каталога
var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_api_requests_total",
		Help: "Количество запросов к API каталога",
	}, []string{"operation", "status"})

	upstreamDurations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_api_request_duration_seconds",
		Help:    "Длительность запросов к API каталога",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// envelope конверт ответа API каталога
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Client HTTP клиент удаленного API каталога, реализующий CatalogPort
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     interfaces.LoggerPort
}

// NewClient создает клиент API каталога.
// baseURL указывает на корень API, например http://localhost:5000/api
func NewClient(baseURL string, timeout time.Duration, logger interfaces.LoggerPort) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ListProducts реализация CatalogPort
func (c *Client) ListProducts(ctx context.Context, params ports.ListParams) ([]models.Product, error) {
	return c.listProducts(ctx, "list products", "/products", params)
}

// ListProductsOnSale реализация CatalogPort
func (c *Client) ListProductsOnSale(ctx context.Context, params ports.ListParams) ([]models.Product, error) {
	return c.listProducts(ctx, "list products on sale", "/products/on-sale", params)
}

func (c *Client) listProducts(ctx context.Context, op, path string, params ports.ListParams) ([]models.Product, error) {
	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	data, err := c.get(ctx, op, path, query)
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err := decodeList(data, &records); err != nil {
		return nil, apperrors.NewNetworkError(op, 0, fmt.Errorf("decode response: %w", err))
	}

	// Некорректная запись пропускается, а не роняет весь список
	products := make([]models.Product, 0, len(records))
	for i, record := range records {
		var product models.Product
		if err := json.Unmarshal(record, &product); err != nil {
			c.logger.WarnWithContext(ctx, "Пропущен некорректный товар",
				interfaces.LogField{Key: "index", Value: i},
				interfaces.LogField{Key: "error", Value: err.Error()})
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// GetProduct реализация CatalogPort
func (c *Client) GetProduct(ctx context.Context, slugOrID string) (*models.Product, error) {
	const op = "get product"

	data, err := c.get(ctx, op, "/products/"+url.PathEscape(slugOrID), nil)
	if err != nil {
		return nil, err
	}
	if isNull(data) {
		return nil, apperrors.ErrNotFound
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, apperrors.NewNetworkError(op, 0, fmt.Errorf("decode response: %w", err))
	}
	return &product, nil
}

// ListCategories реализация CatalogPort
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "list categories"

	data, err := c.get(ctx, op, "/categories", nil)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := decodeList(data, &categories); err != nil {
		return nil, apperrors.NewNetworkError(op, 0, fmt.Errorf("decode response: %w", err))
	}
	return categories, nil
}

// GetCategory реализация CatalogPort
func (c *Client) GetCategory(ctx context.Context, slugOrID string) (*models.Category, error) {
	const op = "get category"

	data, err := c.get(ctx, op, "/categories/"+url.PathEscape(slugOrID), nil)
	if err != nil {
		return nil, err
	}
	if isNull(data) {
		return nil, apperrors.ErrNotFound
	}

	var category models.Category
	if err := json.Unmarshal(data, &category); err != nil {
		return nil, apperrors.NewNetworkError(op, 0, fmt.Errorf("decode response: %w", err))
	}
	return &category, nil
}

// ListBrands реализация CatalogPort
func (c *Client) ListBrands(ctx context.Context) ([]string, error) {
	const op = "list brands"

	data, err := c.get(ctx, op, "/products/brands", nil)
	if err != nil {
		return nil, err
	}

	brands := []string{}
	if err := decodeList(data, &brands); err != nil {
		return nil, apperrors.NewNetworkError(op, 0, fmt.Errorf("decode response: %w", err))
	}
	return brands, nil
}

// get выполняет GET запрос и возвращает поле data конверта.
// 404 превращается в ErrNotFound, остальные сбои в NetworkError.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewNetworkError(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamDurations.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(op, "error").Inc()
		c.logger.ErrorWithContext(ctx, "Ошибка запроса к API каталога",
			interfaces.LogField{Key: "operation", Value: op},
			interfaces.LogField{Key: "error", Value: err.Error()})
		return nil, apperrors.NewNetworkError(op, 0, err)
	}
	defer resp.Body.Close()

	upstreamRequests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.ErrorWithContext(ctx, "API каталога вернуло ошибку",
			interfaces.LogField{Key: "operation", Value: op},
			interfaces.LogField{Key: "status", Value: resp.StatusCode})
		return nil, apperrors.NewNetworkError(op, resp.StatusCode, nil)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, apperrors.NewNetworkError(op, 0, fmt.Errorf("decode envelope: %w", err))
	}

	return env.Data, nil
}

// decodeList декодирует массив, null трактуется как пустой список
func decodeList(data json.RawMessage, v interface{}) error {
	if isNull(data) {
		return nil
	}
	return json.Unmarshal(data, v)
}

func isNull(data json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(data))
	return trimmed == "" || trimmed == "null"
}

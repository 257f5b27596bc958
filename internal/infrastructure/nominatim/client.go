package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/smartcity-dashboard/internal/config"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	searchLimit        = 5
	unknownDisplayName = "Unknown Area"
	maxErrorBodyBytes  = 4 << 10
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	userAgent    string
	countryCodes string
	logger       *zap.Logger
}

// NewNominatimClient создает клиент для Nominatim API (поиск и обратное геокодирование)
func NewNominatimClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		userAgent:    cfg.UserAgent,
		countryCodes: cfg.CountryCodes,
		logger:       logger,
	}
}

type reverseResponse struct {
	DisplayName *string `json:"display_name"`
}

// Search ищет места по текстовому запросу и возвращает ответ Nominatim без изменений
func (c *client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("addressdetails", "1")
	if c.countryCodes != "" {
		params.Set("countrycodes", c.countryCodes)
	}

	body, err := c.get(ctx, "/search", params)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		c.logger.Error("Nominatim returned invalid JSON", zap.String("query", query))
		return nil, fmt.Errorf("nominatim search: invalid JSON response")
	}

	return json.RawMessage(body), nil
}

// ReverseGeocode возвращает display_name для координаты
func (c *client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "json")

	body, err := c.get(ctx, "/reverse", params)
	if err != nil {
		return "", err
	}

	var resp reverseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("Failed to decode reverse response", zap.Error(err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.DisplayName == nil {
		return unknownDisplayName, nil
	}
	return *resp.DisplayName, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	c.logger.Debug("Calling Nominatim API", zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Failed to execute request", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("nominatim API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	listview "github.com/goliatone/go-listview/components/listview"
)

// HTTPConfig configures a REST backed source.
type HTTPConfig struct {
	BaseURL    string
	Path       string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPSource loads the full working set of a list from a REST endpoint. The
// endpoint may answer with a JSON array or an object with a "data" array.
type HTTPSource[T any] struct {
	url    string
	apiKey string
	client *http.Client
}

var _ listview.Source[Order] = (*HTTPSource[Order])(nil)

// NewHTTPSource builds a source for cfg.BaseURL + cfg.Path.
func NewHTTPSource[T any](cfg HTTPConfig) (*HTTPSource[T], error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("catalog: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	path := cfg.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &HTTPSource[T]{
		url:    strings.TrimRight(cfg.BaseURL, "/") + path,
		apiKey: cfg.APIKey,
		client: httpClient,
	}, nil
}

// List fetches every record.
func (s *HTTPSource[T]) List(ctx context.Context) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: http request: %w", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("catalog: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog: remote error %d: %s", resp.StatusCode, strings.TrimSpace(buf.String()))
	}
	return decodeRecords[T](buf.Bytes())
}

func decodeRecords[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if body[0] == '{' {
		var envelope struct {
			Data []T `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("catalog: decode response: %w", err)
		}
		return envelope.Data, nil
	}
	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("catalog: decode response: %w", err)
	}
	return records, nil
}

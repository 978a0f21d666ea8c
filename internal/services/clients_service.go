// internal/services/clients_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rubingroup/rubin-backend/internal/config"
	"github.com/rubingroup/rubin-backend/internal/models"
)

// ErrFeedUnavailable covers every upstream failure mode of the client
// feed: unreachable, non-200, or a body that does not parse.
var ErrFeedUnavailable = errors.New("client feed unavailable")

const maxFeedBody = 4 << 20 // 4MB

// ClientsService proxies the third-party script endpoint that serves the
// client list used for the storefront's PDF export. The upstream is an
// Apps-Script-style endpoint, so the body is parsed defensively.
type ClientsService struct {
	httpClient *http.Client
	feedURL    string
}

func NewClientsService(cfg config.ClientsConfig) *ClientsService {
	return &ClientsService{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		feedURL: cfg.FeedURL,
	}
}

func (s *ClientsService) FetchClients(ctx context.Context) ([]models.Client, error) {
	if s.feedURL == "" {
		return nil, ErrFeedUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream returned %d", ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	clients, err := parseClientFeed(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	return clients, nil
}

// parseClientFeed accepts either a bare JSON array or an object wrapping
// the array under "clients" or "data". Anything else is a parse failure.
func parseClientFeed(body []byte) ([]models.Client, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, errors.New("empty feed body")
	}

	var clients []models.Client
	if err := json.Unmarshal([]byte(trimmed), &clients); err == nil {
		return clients, nil
	}

	var wrapper struct {
		Clients []models.Client `json:"clients"`
		Data    []models.Client `json:"data"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wrapper); err != nil {
		return nil, fmt.Errorf("feed body is not valid JSON: %v", err)
	}
	if wrapper.Clients != nil {
		return wrapper.Clients, nil
	}
	if wrapper.Data != nil {
		return wrapper.Data, nil
	}
	return nil, errors.New("feed body has no client list")
}

package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"hemotrace/contexts/supply-chain/mosaic-dashboard/domain/entities"
	domainerrors "hemotrace/contexts/supply-chain/mosaic-dashboard/domain/errors"
	"hemotrace/internal/shared/events"
)

// Client reads the channel through the public mirror API and projects records
// straight to display summaries. Malformed messages are dropped, transport
// failures surfaced.
type Client struct {
	BaseURL    string
	TopicID    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(baseURL string, topicID string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL:    baseURL,
		TopicID:    topicID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     logger,
	}
}

type messagesResponse struct {
	Messages []struct {
		Message string `json:"message"`
	} `json:"messages"`
}

// tooltipPayload is the subset of a creation payload the dashboard shows.
type tooltipPayload struct {
	BloodType  string     `json:"bloodType"`
	Volume     int        `json:"volume"`
	ExpiryDate *time.Time `json:"expiryDate"`
}

func (c *Client) RecentEvents(ctx context.Context, limit int) ([]entities.EventSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	endpoint := fmt.Sprintf("%s/topics/%s/messages?limit=%d&order=desc",
		c.BaseURL, url.PathEscape(c.TopicID), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrSourceUnavailable, err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: mirror returned %d", domainerrors.ErrSourceUnavailable, resp.StatusCode)
	}

	var body messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode mirror response: %v", domainerrors.ErrSourceUnavailable, err)
	}

	summaries := make([]entities.EventSummary, 0, len(body.Messages))
	for _, raw := range body.Messages {
		msg, err := events.DecodeTransport(raw.Message)
		if err != nil {
			continue
		}
		summaries = append(summaries, toSummary(msg))
	}
	return summaries, nil
}

func toSummary(msg events.Message) entities.EventSummary {
	summary := entities.EventSummary{
		BagID:      msg.BagID,
		Status:     msg.Status,
		ReportedBy: msg.ReportedBy,
		Ts:         msg.Ts,
	}
	if msg.Status == "CREATED" && len(msg.Payload) > 0 {
		var tooltip tooltipPayload
		if err := json.Unmarshal(msg.Payload, &tooltip); err == nil {
			summary.BloodType = tooltip.BloodType
			summary.Volume = tooltip.Volume
			summary.ExpiryDate = tooltip.ExpiryDate
		}
	}
	return summary
}

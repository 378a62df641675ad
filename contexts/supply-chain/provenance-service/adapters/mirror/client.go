package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
	domainerrors "hemotrace/contexts/supply-chain/provenance-service/domain/errors"
	"hemotrace/internal/shared/events"
)

// defaultFetchWindow is how many recent messages a by-bag lookup scans. The
// read API cannot filter by bagId, so filtering happens client-side over the
// most recent window, as the original deployment does.
const defaultFetchWindow = 200

// Client reads the topic through the public mirror API. It owns decode
// tolerance: a malformed message is dropped, a failed transport call is
// surfaced. No retries live here.
type Client struct {
	BaseURL     string
	TopicID     string
	HTTPClient  *http.Client
	FetchWindow int
	Logger      *slog.Logger
}

func NewClient(baseURL string, topicID string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL:     baseURL,
		TopicID:     topicID,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		FetchWindow: defaultFetchWindow,
		Logger:      logger,
	}
}

type messagesResponse struct {
	Messages []struct {
		Message            string `json:"message"`
		ConsensusTimestamp string `json:"consensus_timestamp"`
		SequenceNumber     int64  `json:"sequence_number"`
	} `json:"messages"`
}

func (c *Client) RecentEvents(ctx context.Context, limit int) ([]entities.EventRecord, error) {
	if limit <= 0 {
		limit = defaultFetchWindow
	}
	endpoint := fmt.Sprintf("%s/topics/%s/messages?limit=%d&order=desc",
		c.BaseURL, url.PathEscape(c.TopicID), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrMirrorUnavailable, err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrMirrorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: mirror returned %d", domainerrors.ErrMirrorUnavailable, resp.StatusCode)
	}

	var body messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode mirror response: %v", domainerrors.ErrMirrorUnavailable, err)
	}

	records := make([]entities.EventRecord, 0, len(body.Messages))
	for _, raw := range body.Messages {
		msg, err := events.DecodeTransport(raw.Message)
		if err != nil {
			c.Logger.Debug("dropping undecodable mirror message",
				"event", "mirror_message_dropped",
				"module", "supply-chain/provenance-service",
				"layer", "adapter",
				"sequence_number", raw.SequenceNumber,
			)
			continue
		}
		record, err := entities.NewRecord(msg.BagID, msg.Status, msg.ReportedBy, msg.Ts, msg.Payload)
		if err != nil {
			c.Logger.Debug("dropping invalid event record",
				"event", "mirror_record_dropped",
				"module", "supply-chain/provenance-service",
				"layer", "adapter",
				"sequence_number", raw.SequenceNumber,
				"reason", err.Error(),
			)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (c *Client) EventsByBag(ctx context.Context, bagID string) ([]entities.EventRecord, error) {
	window := c.FetchWindow
	if window <= 0 {
		window = defaultFetchWindow
	}
	all, err := c.RecentEvents(ctx, window)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.EventRecord, 0, 8)
	for _, record := range all {
		if record.BagID == bagID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

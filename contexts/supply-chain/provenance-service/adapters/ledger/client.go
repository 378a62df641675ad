package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"hemotrace/contexts/supply-chain/provenance-service/domain/entities"
	domainerrors "hemotrace/contexts/supply-chain/provenance-service/domain/errors"
	"hemotrace/contexts/supply-chain/provenance-service/ports"
	"hemotrace/internal/shared/events"
)

// Client appends records through the ledger gateway's authenticated write
// endpoint. The gateway signs on behalf of the connected identity; this
// client never touches key material.
type Client struct {
	SubmitURL  string
	TopicID    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewClient(submitURL string, topicID string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		SubmitURL:  submitURL,
		TopicID:    topicID,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
	}
}

type submitRequest struct {
	TopicID        string `json:"topic_id"`
	Message        string `json:"message"`
	PayerAccountID string `json:"payer_account_id"`
}

type submitResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

func (c *Client) Append(ctx context.Context, record entities.EventRecord) (ports.Receipt, error) {
	payload, err := record.PayloadJSON()
	if err != nil {
		return ports.Receipt{}, fmt.Errorf("%w: encode payload: %v", domainerrors.ErrLedgerRejected, err)
	}
	text, err := events.Message{
		BagID:      record.BagID,
		Status:     string(record.Status),
		Payload:    payload,
		ReportedBy: record.ReportedBy,
		Ts:         record.Ts,
	}.Encode()
	if err != nil {
		return ports.Receipt{}, fmt.Errorf("%w: encode message: %v", domainerrors.ErrLedgerRejected, err)
	}

	body, err := json.Marshal(submitRequest{
		TopicID:        c.TopicID,
		Message:        string(text),
		PayerAccountID: record.ReportedBy,
	})
	if err != nil {
		return ports.Receipt{}, fmt.Errorf("%w: %v", domainerrors.ErrLedgerRejected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.SubmitURL, bytes.NewReader(body))
	if err != nil {
		return ports.Receipt{}, fmt.Errorf("%w: %v", domainerrors.ErrLedgerRejected, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ports.Receipt{}, fmt.Errorf("%w: %v", domainerrors.ErrLedgerRejected, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.Receipt{}, fmt.Errorf("%w: write endpoint returned %d", domainerrors.ErrLedgerRejected, resp.StatusCode)
	}

	var confirmed submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmed); err != nil {
		return ports.Receipt{}, fmt.Errorf("%w: decode receipt: %v", domainerrors.ErrLedgerRejected, err)
	}
	if confirmed.TransactionID == "" {
		return ports.Receipt{}, fmt.Errorf("%w: receipt missing transaction id", domainerrors.ErrLedgerRejected)
	}
	return ports.Receipt{
		TransactionRef: confirmed.TransactionID,
		LedgerStatus:   confirmed.Status,
	}, nil
}

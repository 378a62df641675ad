package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"hemotrace/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "hemotrace/contexts/identity-access/wallet-session/domain/errors"
)

const tinybarsPerUnit = 100_000_000

// Directory resolves accounts through the public mirror accounts endpoint.
type Directory struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewDirectory(baseURL string) *Directory {
	return &Directory{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type accountResponse struct {
	Account string `json:"account"`
	Balance struct {
		Balance int64 `json:"balance"`
	} `json:"balance"`
}

func (d *Directory) Lookup(ctx context.Context, accountID string) (entities.Account, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s", d.BaseURL, url.PathEscape(accountID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Account{}, fmt.Errorf("%w: %v", domainerrors.ErrDirectoryUnavailable, err)
	}
	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return entities.Account{}, fmt.Errorf("%w: %v", domainerrors.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.Account{}, fmt.Errorf("%w: %s", domainerrors.ErrAccountNotFound, accountID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return entities.Account{}, fmt.Errorf("%w: mirror returned %d", domainerrors.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var body accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Account{}, fmt.Errorf("%w: decode account response: %v", domainerrors.ErrDirectoryUnavailable, err)
	}
	if body.Account == "" {
		body.Account = accountID
	}
	return entities.Account{
		AccountID: body.Account,
		Balance:   float64(body.Balance.Balance) / tinybarsPerUnit,
	}, nil
}

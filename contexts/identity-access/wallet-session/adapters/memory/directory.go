package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hemotrace/contexts/identity-access/wallet-session/domain/entities"
	domainerrors "hemotrace/contexts/identity-access/wallet-session/domain/errors"
)

// Directory is a fixed in-process account set for tests and local runs.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]entities.Account
}

func NewDirectory(accounts ...entities.Account) *Directory {
	d := &Directory{accounts: make(map[string]entities.Account, len(accounts))}
	for _, account := range accounts {
		d.accounts[account.AccountID] = account
	}
	return d
}

func (d *Directory) Add(account entities.Account) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[account.AccountID] = account
}

func (d *Directory) Lookup(_ context.Context, accountID string) (entities.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	account, ok := d.accounts[accountID]
	if !ok {
		return entities.Account{}, fmt.Errorf("%w: %s", domainerrors.ErrAccountNotFound, accountID)
	}
	return account, nil
}

// SystemClock satisfies the service clock for production wiring.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

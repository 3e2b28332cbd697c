package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
)

// Repository is the account store.
type Repository interface {
	Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error)
	Get(ctx context.Context, id int64) (*dto.AccountRead, error)
	// FindOwned returns the account only if userID owns it, domain.ErrNotFound otherwise.
	FindOwned(ctx context.Context, id, userID int64) (*dto.AccountRead, error)
	ListByUser(ctx context.Context, userID int64) ([]*dto.AccountRead, error)
	Update(ctx context.Context, id int64, update dto.AccountUpdate) error
	Delete(ctx context.Context, id int64) error
	// HasTransactions reports whether any transaction is booked on the account.
	HasTransactions(ctx context.Context, id int64) (bool, error)
}

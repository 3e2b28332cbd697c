package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/ledger/pkg/dto"
)

// Repository is the transaction store.
type Repository interface {
	// Find lists the transactions booked on accounts owned by userID,
	// narrowed by filter. Rows of other users are never returned.
	Find(ctx context.Context, userID int64, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)

	// FindOne returns the first row matching filter, unscoped by user.
	FindOne(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionRead, error)

	// Save validates, normalises the sign and inserts a row.
	Save(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error)

	// Update overwrites the set fields of row id and returns the result.
	Update(ctx context.Context, id int64, update dto.TransactionUpdate) (*dto.TransactionRead, error)

	// Remove deletes row id. Missing rows are not an error.
	Remove(ctx context.Context, id int64) error

	// Balance sums completed transactions dated up to asOf, per account of userID.
	Balance(ctx context.Context, userID int64, asOf time.Time) ([]*dto.AccountBalance, error)
}

package transfer

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
)

// Repository is the transfer store. Legs live in the transaction store.
type Repository interface {
	Create(ctx context.Context, create dto.TransferCreate) (*dto.TransferRead, error)
	Get(ctx context.Context, id int64) (*dto.TransferRead, error)
	ListByUser(ctx context.Context, userID int64) ([]*dto.TransferRead, error)
	Update(ctx context.Context, id int64, update dto.TransferUpdate) error
	Delete(ctx context.Context, id int64) error
}

package user

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
)

// Repository is the user store.
type Repository interface {
	Create(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error)
	Get(ctx context.Context, id int64) (*dto.UserRead, error)
	GetByMail(ctx context.Context, mail string) (*dto.UserRead, error)
	List(ctx context.Context) ([]*dto.UserRead, error)
}

package account

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// New creates an account repository bound to db.
func New(db *gorm.DB) repo.Repository {
	return &accountRepository{db: db}
}

// Create implements account.Repository.
func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	row := mapCreateDTOToModel(create)
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// Get implements account.Repository.
func (r *accountRepository) Get(ctx context.Context, id int64) (*dto.AccountRead, error) {
	var row model.Account
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// FindOwned implements account.Repository.
func (r *accountRepository) FindOwned(ctx context.Context, id, userID int64) (*dto.AccountRead, error) {
	var row model.Account
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", id, userID).
			First(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// ListByUser implements account.Repository.
func (r *accountRepository) ListByUser(ctx context.Context, userID int64) ([]*dto.AccountRead, error) {
	var rows []model.Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	result := make([]*dto.AccountRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToReadDTO(&rows[i]))
	}
	return result, nil
}

// Update implements account.Repository.
func (r *accountRepository) Update(ctx context.Context, id int64, update dto.AccountUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).
			Model(&model.Account{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
}

// Delete implements account.Repository.
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&model.Account{}, id).Error
	})
}

// HasTransactions implements account.Repository.
func (r *accountRepository) HasTransactions(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("acc_id = ?", id).
		Count(&count).Error; err != nil {
		return false, repository.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func mapCreateDTOToModel(create dto.AccountCreate) model.Account {
	return model.Account{Name: create.Name, UserID: create.UserID}
}

func mapUpdateDTOToModel(update dto.AccountUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	return updates
}

func mapModelToReadDTO(row *model.Account) *dto.AccountRead {
	return &dto.AccountRead{ID: row.ID, Name: row.Name, UserID: row.UserID}
}

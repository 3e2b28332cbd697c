package transfer

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/transfer"
	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

// New creates a transfer repository bound to db.
func New(db *gorm.DB) repo.Repository {
	return &transferRepository{db: db}
}

// Create implements transfer.Repository.
func (r *transferRepository) Create(ctx context.Context, create dto.TransferCreate) (*dto.TransferRead, error) {
	row := mapCreateDTOToModel(create)
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// Get implements transfer.Repository.
func (r *transferRepository) Get(ctx context.Context, id int64) (*dto.TransferRead, error) {
	var row model.Transfer
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// ListByUser implements transfer.Repository.
func (r *transferRepository) ListByUser(ctx context.Context, userID int64) ([]*dto.TransferRead, error) {
	var rows []model.Transfer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date, id").
		Find(&rows).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransferRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToReadDTO(&rows[i]))
	}
	return result, nil
}

// Update implements transfer.Repository.
func (r *transferRepository) Update(ctx context.Context, id int64, update dto.TransferUpdate) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).
			Model(&model.Transfer{}).
			Where("id = ?", id).
			Updates(mapUpdateDTOToModel(update)).Error
	})
}

// Delete implements transfer.Repository.
func (r *transferRepository) Delete(ctx context.Context, id int64) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&model.Transfer{}, id).Error
	})
}

func mapCreateDTOToModel(create dto.TransferCreate) model.Transfer {
	return model.Transfer{
		Description: create.Description,
		Date:        create.Date,
		Ammount:     create.Ammount,
		AccOriID:    create.OriginID,
		AccDestID:   create.DestinationID,
		UserID:      create.UserID,
	}
}

func mapUpdateDTOToModel(update dto.TransferUpdate) map[string]any {
	return map[string]any{
		"description": update.Description,
		"date":        update.Date,
		"ammount":     update.Ammount,
		"acc_ori_id":  update.OriginID,
		"acc_dest_id": update.DestinationID,
	}
}

func mapModelToReadDTO(row *model.Transfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:            row.ID,
		Description:   row.Description,
		Date:          row.Date,
		Ammount:       row.Ammount,
		OriginID:      row.AccOriID,
		DestinationID: row.AccDestID,
		UserID:        row.UserID,
	}
}

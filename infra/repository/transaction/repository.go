package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/transaction"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// New creates a transaction repository bound to db.
func New(db *gorm.DB) repo.Repository {
	return &transactionRepository{db: db}
}

// Find implements transaction.Repository.
func (r *transactionRepository) Find(
	ctx context.Context,
	userID int64,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	var rows []model.Transaction
	q := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("transactions.*").
		Joins("JOIN accounts ON accounts.id = transactions.acc_id").
		Where("accounts.user_id = ?", userID)
	if err := applyFilter(q, filter).
		Order("transactions.date, transactions.id").
		Find(&rows).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToReadDTO(&rows[i]))
	}
	return result, nil
}

// FindOne implements transaction.Repository.
func (r *transactionRepository) FindOne(
	ctx context.Context,
	filter dto.TransactionFilter,
) (*dto.TransactionRead, error) {
	var row model.Transaction
	q := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter)
	if err := repository.WrapError(func() error {
		return q.Order("transactions.id").First(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// Save implements transaction.Repository.
func (r *transactionRepository) Save(
	ctx context.Context,
	create dto.TransactionCreate,
) (*dto.TransactionRead, error) {
	tx, err := create.Draft().Build()
	if err != nil {
		return nil, err
	}
	row := model.Transaction{
		Description: tx.Description,
		Date:        tx.Date,
		Ammount:     tx.Ammount,
		Type:        string(tx.Type),
		AccID:       tx.AccountID,
		TransferID:  tx.TransferID,
		Status:      tx.Status,
	}
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// Update implements transaction.Repository.
func (r *transactionRepository) Update(
	ctx context.Context,
	id int64,
	update dto.TransactionUpdate,
) (*dto.TransactionRead, error) {
	if updates := mapUpdateDTOToModel(update); len(updates) > 0 {
		if err := repository.WrapError(func() error {
			return r.db.WithContext(ctx).
				Model(&model.Transaction{}).
				Where("id = ?", id).
				Updates(updates).Error
		}); err != nil {
			return nil, err
		}
	}
	return r.FindOne(ctx, dto.TransactionFilter{ID: &id})
}

// Remove implements transaction.Repository.
func (r *transactionRepository) Remove(ctx context.Context, id int64) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error
	})
}

type balanceRow struct {
	AccountID int64
	Sum       decimal.Decimal
}

// Balance implements transaction.Repository.
func (r *transactionRepository) Balance(
	ctx context.Context,
	userID int64,
	asOf time.Time,
) ([]*dto.AccountBalance, error) {
	var rows []balanceRow
	if err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Select("accounts.id AS account_id, COALESCE(SUM(transactions.ammount), 0) AS sum").
		Joins("LEFT JOIN transactions ON transactions.acc_id = accounts.id"+
			" AND transactions.status = ? AND transactions.date <= ?", true, asOf).
		Where("accounts.user_id = ?", userID).
		Group("accounts.id").
		Order("accounts.id").
		Scan(&rows).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	result := make([]*dto.AccountBalance, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.AccountBalance{AccountID: row.AccountID, Sum: row.Sum.Round(2)})
	}
	return result, nil
}

func applyFilter(q *gorm.DB, filter dto.TransactionFilter) *gorm.DB {
	if filter.ID != nil {
		q = q.Where("transactions.id = ?", *filter.ID)
	}
	if filter.AccountID != nil {
		q = q.Where("transactions.acc_id = ?", *filter.AccountID)
	}
	if filter.TransferID != nil {
		q = q.Where("transactions.transfer_id = ?", *filter.TransferID)
	}
	if filter.Type != nil {
		q = q.Where("transactions.type = ?", *filter.Type)
	}
	if filter.Status != nil {
		q = q.Where("transactions.status = ?", *filter.Status)
	}
	return q
}

func mapUpdateDTOToModel(update dto.TransactionUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}
	if update.Ammount != nil {
		updates["ammount"] = *update.Ammount
	}
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.AccountID != nil {
		updates["acc_id"] = *update.AccountID
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	return updates
}

func mapModelToReadDTO(row *model.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          row.ID,
		Description: row.Description,
		Date:        row.Date,
		Ammount:     row.Ammount,
		Type:        row.Type,
		AccountID:   row.AccID,
		TransferID:  row.TransferID,
		Status:      row.Status,
	}
}

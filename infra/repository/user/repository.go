package user

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/infra/repository/model"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/user"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// New creates a user repository bound to db.
func New(db *gorm.DB) repo.Repository {
	return &userRepository{db: db}
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, create dto.UserCreate) (*dto.UserRead, error) {
	row := model.User{Name: create.Name, Mail: create.Mail, Passwd: create.Passwd}
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// Get implements user.Repository.
func (r *userRepository) Get(ctx context.Context, id int64) (*dto.UserRead, error) {
	var row model.User
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// GetByMail implements user.Repository.
func (r *userRepository) GetByMail(ctx context.Context, mail string) (*dto.UserRead, error) {
	var row model.User
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("mail = ?", mail).First(&row).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToReadDTO(&row), nil
}

// List implements user.Repository.
func (r *userRepository) List(ctx context.Context) ([]*dto.UserRead, error) {
	var rows []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	result := make([]*dto.UserRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToReadDTO(&rows[i]))
	}
	return result, nil
}

func mapModelToReadDTO(row *model.User) *dto.UserRead {
	return &dto.UserRead{ID: row.ID, Name: row.Name, Mail: row.Mail, Passwd: row.Passwd}
}

package repository

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// It walks the wrap chain; unknown errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	for currentErr := err; currentErr != nil; currentErr = errors.Unwrap(currentErr) {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
	}
	return err
}

// WrapError runs a GORM operation and maps its error.
//
//	err := WrapError(func() error {
//		return r.db.WithContext(ctx).Create(&row).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// Package user provides signup and lookup of ledger users.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
)

// Service provides user operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

func mailTaken() error {
	return domain.NewValidationError(domain.CodeMailTaken, "mail", "a user with this mail already exists")
}

// Create signs up a user. The mail must be unused.
func (s *Service) Create(ctx context.Context, name, mail, passwd string) (*dto.UserRead, error) {
	log := s.logger.With("mail", mail)
	log.Info("CreateUser started")

	u, err := user.New(name, mail, passwd)
	if err != nil {
		log.Error("CreateUser failed: invalid input", "error", err)
		return nil, err
	}

	var created *dto.UserRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if _, err := repo.GetByMail(ctx, u.Mail); err == nil {
			return mailTaken()
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		created, err = repo.Create(ctx, dto.UserCreate{Name: u.Name, Mail: u.Mail, Passwd: u.Passwd})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return mailTaken()
		}
		return err
	})
	if err != nil {
		log.Error("CreateUser failed", "error", err)
		return nil, err
	}
	log.Info("CreateUser successful", "userID", created.ID)
	return created, nil
}

// List returns every user.
func (s *Service) List(ctx context.Context) (users []*dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		users, err = repo.List(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("ListUsers failed", "error", err)
		return nil, err
	}
	return users, nil
}

// GetByMail looks a user up by mail.
func (s *Service) GetByMail(ctx context.Context, mail string) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByMail(ctx, mail)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

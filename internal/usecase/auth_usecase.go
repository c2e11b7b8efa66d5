package usecase

import (
	"context"
	"errors"

	"user-admin-service/internal/converter"
	"user-admin-service/internal/delivery/dto"
	"user-admin-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// AuthUsecase is the adapter the external security layer authenticates
// through: username in, principal with authorities out.
type AuthUsecase interface {
	Authenticate(ctx context.Context, username string) (*dto.Principal, error)
}

type authUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewAuthUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *authUsecase) Authenticate(ctx context.Context, username string) (*dto.Principal, error) {
	user, err := u.userRepo.FindByFirstname(u.db.WithContext(ctx), username)
	if err != nil {
		u.log.Warnf("Failed to find user by firstname: %+v", err)
		return nil, err
	}
	if user == nil {
		// Must surface to the security layer as an authentication failure.
		return nil, ErrUserNotFound
	}

	return converter.UserToPrincipal(user), nil
}

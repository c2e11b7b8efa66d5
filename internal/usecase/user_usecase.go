package usecase

import (
	"context"
	"fmt"

	"user-admin-service/internal/converter"
	"user-admin-service/internal/delivery/dto"
	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	AddUser(ctx context.Context, req *dto.SaveUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, req *dto.SaveUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
	FindByFirstname(ctx context.Context, firstname string) (*dto.UserResponse, error)
	ListAllWithRoles(ctx context.Context) ([]dto.UserWithRoles, error)
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// resolveRoles maps role name fragments to stored roles by looking up
// "ROLE_" + fragment. Fragments with no matching role are dropped without an
// error, so the result may be smaller than the request, or empty.
func (u *userUsecase) resolveRoles(ctx context.Context, db *gorm.DB, fragments []string) ([]entity.Role, error) {
	roles := make([]entity.Role, 0, len(fragments))
	seen := make(map[int64]bool, len(fragments))

	for _, fragment := range fragments {
		role, err := u.roleRepo.FindByName(ctx, db, entity.RolePrefix+fragment)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve role %q: %w", fragment, err)
		}
		if role == nil || seen[role.ID] {
			continue
		}
		seen[role.ID] = true
		roles = append(roles, *role)
	}

	return roles, nil
}

func (u *userUsecase) AddUser(ctx context.Context, req *dto.SaveUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	roles, err := u.resolveRoles(ctx, tx, req.Roles)
	if err != nil {
		u.log.Warnf("Failed to resolve roles: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Age:       req.Age,
		Password:  req.Password,
		Roles:     roles,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, req *dto.SaveUserRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		// Absent target is a silent no-op, not an error.
		return nil
	}

	user.Firstname = req.Firstname
	user.Lastname = req.Lastname
	user.Age = req.Age
	user.Password = req.Password

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return err
	}

	roles, err := u.resolveRoles(ctx, tx, req.Roles)
	if err != nil {
		u.log.Warnf("Failed to resolve roles: %+v", err)
		return err
	}

	// The role set is replaced wholesale, never merged.
	if err := u.userRepo.ReplaceRoles(tx, user, roles); err != nil {
		u.log.Warnf("Failed to replace user roles: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return nil
	}

	// Detach roles before deleting the row so the join table never
	// references a deleted user id, even without cascade support.
	if err := u.userRepo.ClearRoles(tx, user); err != nil {
		u.log.Warnf("Failed to clear user roles: %+v", err)
		return err
	}

	if err := u.userRepo.DeleteByID(tx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *userUsecase) FindByFirstname(ctx context.Context, firstname string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByFirstname(u.db.WithContext(ctx), firstname)
	if err != nil {
		u.log.Warnf("Failed to find user by firstname: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) ListAllWithRoles(ctx context.Context) ([]dto.UserWithRoles, error) {
	users, err := u.userRepo.FindAllSortedByID(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	rows := make([]dto.UserWithRoles, 0, len(users))
	for i := range users {
		rows = append(rows, converter.UserToListRow(&users[i]))
	}

	return rows, nil
}

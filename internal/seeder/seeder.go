package seeder

import (
	"context"
	"fmt"

	"user-admin-service/internal/domain/entity"
	"user-admin-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates the default roles and accounts on an empty store. It runs
// before any traffic is accepted and skips entirely once any user exists, so
// restarts do not duplicate the defaults.
func Seed(
	ctx context.Context,
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
) error {
	count, err := userRepo.Count(db.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Info("Users already present, skipping seed")
		return nil
	}

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	adminRole, err := ensureRole(ctx, tx, roleRepo, entity.RoleAdmin)
	if err != nil {
		return err
	}
	userRole, err := ensureRole(ctx, tx, roleRepo, entity.RoleUser)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Firstname: "admin",
		Lastname:  "adminAdmin",
		Age:       45,
		Roles:     []entity.Role{*adminRole, *userRole},
	}
	if admin.Password, err = hashPassword("admin"); err != nil {
		return err
	}
	if err := userRepo.Create(tx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	user := &entity.User{
		Firstname: "user",
		Lastname:  "userUser",
		Age:       66,
		Roles:     []entity.Role{*userRole},
	}
	if user.Password, err = hashPassword("user"); err != nil {
		return err
	}
	if err := userRepo.Create(tx, user); err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed commit seed transaction: %w", err)
	}

	log.Info("Seeded default roles and users")
	return nil
}

func ensureRole(ctx context.Context, db *gorm.DB, roleRepo repository.RoleRepository, name string) (*entity.Role, error) {
	role, err := roleRepo.FindByName(ctx, db, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up role %s: %w", name, err)
	}
	if role != nil {
		return role, nil
	}

	role = &entity.Role{Name: name}
	if err := roleRepo.Create(ctx, db, role); err != nil {
		return nil, fmt.Errorf("failed to seed role %s: %w", name, err)
	}
	return role, nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash seed password: %w", err)
	}
	return string(hash), nil
}

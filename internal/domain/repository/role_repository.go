package repository

import (
	"context"

	"user-admin-service/internal/domain/entity"

	"gorm.io/gorm"
)

// RoleRepository is the persistence boundary for roles. FindByName returns
// (nil, nil) when no role carries the given name.
type RoleRepository interface {
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error)
	Create(ctx context.Context, db *gorm.DB, role *entity.Role) error
}

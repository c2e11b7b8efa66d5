package repository

import (
	"user-admin-service/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository is the persistence boundary for users. Implementations
// receive the database handle per call so usecases can pass a transaction.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id int64) (*entity.User, error)
	FindByFirstname(db *gorm.DB, firstname string) (*entity.User, error)
	FindAllSortedByID(db *gorm.DB) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	ReplaceRoles(db *gorm.DB, user *entity.User, roles []entity.Role) error
	ClearRoles(db *gorm.DB, user *entity.User) error
	DeleteByID(db *gorm.DB, id int64) error
	Count(db *gorm.DB) (int64, error)
}

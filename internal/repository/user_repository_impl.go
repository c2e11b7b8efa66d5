package repository

import (
	"errors"

	"user-admin-service/internal/domain/entity"
	domainRepo "user-admin-service/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id int64) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Roles").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByFirstname(db *gorm.DB, firstname string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("Roles").Where("firstname = ?", firstname).Order("id").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAllSortedByID(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Preload("Roles").Order("id asc").Find(&users).Error
	return users, err
}

// Update persists scalar fields only; the role set is managed through
// ReplaceRoles and ClearRoles.
func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Omit("Roles").Save(user).Error
}

func (r *userRepository) ReplaceRoles(db *gorm.DB, user *entity.User, roles []entity.Role) error {
	return db.Model(user).Association("Roles").Replace(&roles)
}

func (r *userRepository) ClearRoles(db *gorm.DB, user *entity.User) error {
	return db.Model(user).Association("Roles").Clear()
}

func (r *userRepository) DeleteByID(db *gorm.DB, id int64) error {
	return db.Delete(&entity.User{}, id).Error
}

func (r *userRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.User{}).Count(&count).Error
	return count, err
}

package converter

import (
	"testing"

	"user-admin-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestUserToListRowStripsAndSortsFragments(t *testing.T) {
	user := &entity.User{
		ID:        7,
		Firstname: "admin",
		Roles: []entity.Role{
			{ID: 2, Name: entity.RoleUser},
			{ID: 1, Name: entity.RoleAdmin},
		},
	}

	row := UserToListRow(user)
	assert.Equal(t, int64(7), row.ID)
	assert.Equal(t, []string{"admin", "user"}, row.Roles)
}

func TestUserToPrincipalCarriesStoredPassword(t *testing.T) {
	user := &entity.User{
		Firstname: "admin",
		Password:  "stored-hash",
		Roles:     []entity.Role{{ID: 1, Name: entity.RoleAdmin}},
	}

	principal := UserToPrincipal(user)
	assert.Equal(t, "admin", principal.Username)
	assert.Equal(t, "stored-hash", principal.Password)
	assert.Equal(t, []string{entity.RoleAdmin}, principal.Authorities)
}

func TestUserToResponseNil(t *testing.T) {
	assert.Nil(t, UserToResponse(nil))
	assert.Nil(t, UserToPrincipal(nil))
}

package converter

import (
	"sort"
	"strings"

	"user-admin-service/internal/delivery/dto"
	"user-admin-service/internal/domain/entity"
)

// UserToResponse converts a User entity to a UserResponse DTO. Role names
// are carried verbatim (with the ROLE_ prefix).
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Age:       user.Age,
		Roles:     user.Authorities(),
	}
}

// UserToPrincipal builds the authentication view of a User: username, stored
// password and one authority token per role.
func UserToPrincipal(user *entity.User) *dto.Principal {
	if user == nil {
		return nil
	}

	return &dto.Principal{
		Username:    user.Username(),
		Password:    user.Password,
		Authorities: user.Authorities(),
	}
}

// UserToListRow builds one listing row: role names with the ROLE_ prefix
// stripped, sorted alphabetically.
func UserToListRow(user *entity.User) dto.UserWithRoles {
	fragments := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		fragments = append(fragments, strings.TrimPrefix(role.Name, entity.RolePrefix))
	}
	sort.Strings(fragments)

	return dto.UserWithRoles{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Age:       user.Age,
		Roles:     fragments,
	}
}

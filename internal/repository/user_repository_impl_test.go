package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"user-admin-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Role{}, &entity.User{}))
	return db
}

func createRole(t *testing.T, db *gorm.DB, name string) *entity.Role {
	t.Helper()
	role := &entity.Role{Name: name}
	require.NoError(t, NewRoleRepository().Create(context.Background(), db, role))
	return role
}

func TestUserRepositoryFindByIDPreloadsRoles(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository()
	admin := createRole(t, db, entity.RoleAdmin)

	user := &entity.User{Firstname: "alice", Password: "pw", Roles: []entity.Role{*admin}}
	require.NoError(t, repo.Create(db, user))

	found, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Roles, 1)
	assert.Equal(t, entity.RoleAdmin, found.Roles[0].Name)
}

func TestUserRepositoryFindByIDMissingReturnsNil(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository()

	found, err := repo.FindByID(db, 42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepositoryFindByFirstnamePicksLowestID(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository()

	first := &entity.User{Firstname: "twin", Password: "pw"}
	require.NoError(t, repo.Create(db, first))
	second := &entity.User{Firstname: "twin", Password: "pw2"}
	require.NoError(t, repo.Create(db, second))

	found, err := repo.FindByFirstname(db, "twin")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)
}

func TestUserRepositoryClearRolesRemovesJoinRowsOnly(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository()
	admin := createRole(t, db, entity.RoleAdmin)
	member := createRole(t, db, entity.RoleUser)

	user := &entity.User{Firstname: "bob", Password: "pw", Roles: []entity.Role{*admin, *member}}
	require.NoError(t, repo.Create(db, user))

	require.NoError(t, repo.ClearRoles(db, user))

	var joinRows int64
	require.NoError(t, db.Table("user_roles").Where("user_id = ?", user.ID).Count(&joinRows).Error)
	assert.Zero(t, joinRows)

	var roleCount int64
	require.NoError(t, db.Model(&entity.Role{}).Count(&roleCount).Error)
	assert.Equal(t, int64(2), roleCount)
}

func TestUserRepositoryReplaceRolesSwapsAssociation(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository()
	admin := createRole(t, db, entity.RoleAdmin)
	member := createRole(t, db, entity.RoleUser)

	user := &entity.User{Firstname: "carol", Password: "pw", Roles: []entity.Role{*admin}}
	require.NoError(t, repo.Create(db, user))

	require.NoError(t, repo.ReplaceRoles(db, user, []entity.Role{*member}))

	found, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	require.Len(t, found.Roles, 1)
	assert.Equal(t, entity.RoleUser, found.Roles[0].Name)
}

func TestUserRepositoryFindAllSortedByID(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(db, &entity.User{Firstname: name, Password: "pw"}))
	}

	users, err := repo.FindAllSortedByID(db)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.True(t, users[0].ID < users[1].ID && users[1].ID < users[2].ID)
}

func TestUserRepositoryDeleteByID(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository()

	user := &entity.User{Firstname: "gone", Password: "pw"}
	require.NoError(t, repo.Create(db, user))
	require.NoError(t, repo.DeleteByID(db, user.ID))

	found, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	count, err := repo.Count(db)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRoleRepositoryFindByNameMissingReturnsNil(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewRoleRepository()

	role, err := repo.FindByName(context.Background(), db, "ROLE_MISSING")
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestRoleRepositoryFindByName(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewRoleRepository()
	created := createRole(t, db, entity.RoleAdmin)

	role, err := repo.FindByName(context.Background(), db, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, created.ID, role.ID)
}

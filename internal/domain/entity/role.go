package entity

// RolePrefix is prepended to role name fragments when resolving roles,
// e.g. fragment "admin" resolves against "ROLE_ADMIN".
const RolePrefix = "ROLE_"

// Canonical role names seeded at startup
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Role represents a named permission tag attached to users
type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:role;type:varchar(50);uniqueIndex;not null" json:"role"`
}

func (Role) TableName() string {
	return "roles"
}

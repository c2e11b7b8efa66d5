package entity

// User represents an application account. Firstname doubles as the login
// username for the authentication lookup.
type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname string `gorm:"type:varchar(255);not null" json:"firstname"`
	Lastname  string `gorm:"type:varchar(255)" json:"lastname"`
	Age       int    `json:"age"`
	Password  string `gorm:"type:text;not null" json:"-"`

	// Relationships
	Roles []Role `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Username returns the value the authentication layer identifies this
// account by.
func (u *User) Username() string {
	return u.Firstname
}

// Authorities returns one permission token per role, the role name verbatim.
func (u *User) Authorities() []string {
	authorities := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		authorities = append(authorities, role.Name)
	}
	return authorities
}

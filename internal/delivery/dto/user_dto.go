package dto

// Request DTOs

// SaveUserRequest carries the operator input for add-user and update-user.
// Roles holds role name fragments without the ROLE_ prefix, e.g. "admin".
type SaveUserRequest struct {
	ID        int64    `json:"id"`
	Firstname string   `json:"firstname" validate:"required,min=1,max=255"`
	Lastname  string   `json:"lastname" validate:"omitempty,max=255"`
	Age       int      `json:"age" validate:"gte=0,lte=150"`
	Password  string   `json:"password" validate:"required"`
	Roles     []string `json:"roles" validate:"omitempty,dive,min=1"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        int64    `json:"id"`
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Age       int      `json:"age"`
	Roles     []string `json:"roles"`
}

// UserWithRoles is one row of the admin listing: the user keyed by id with
// its role fragments, ROLE_ prefix stripped and alphabetically sorted.
type UserWithRoles struct {
	ID        int64    `json:"id"`
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Age       int      `json:"age"`
	Roles     []string `json:"roles"`
}

// Principal is the authenticated identity handed to the external security
// layer. Password is the stored credential verbatim; verifying it against a
// presented password is the caller's job.
type Principal struct {
	Username    string   `json:"username"`
	Password    string   `json:"-"`
	Authorities []string `json:"authorities"`
}

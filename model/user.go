package model

import "github.com/drawhub-lab/client/pkg/api"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// UpdateUserRequest is a partial update: nil fields are left untouched by
// the backend and omitted from the request body.
type UpdateUserRequest struct {
	Username *string     `json:"username,omitempty"`
	Email    *string     `json:"email,omitempty"`
	Role     *Role       `json:"role,omitempty"`
	Status   *UserStatus `json:"status,omitempty"`
}

type UserResponse struct {
	User User `json:"user"`
}

type UserListResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type UserListParams struct {
	ListParams
	Role   Role
	Status UserStatus
}

func (p UserListParams) Values() *api.Parameter {
	return p.ListParams.Values().
		Add("role", string(p.Role)).
		Add("status", string(p.Status))
}

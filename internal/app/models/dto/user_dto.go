package dto

import "eventboard/internal/app/models"

// UserResponse is the read projection of an account. The password hash is
// never part of any API response.
type UserResponse struct {
	ID                 int64        `json:"id"`
	Username           string       `json:"username"`
	Roles              models.Roles `json:"roles"`
	AccountLocked      bool         `json:"accountLocked"`
	AccountExpired     bool         `json:"accountExpired"`
	CredentialsExpired bool         `json:"credentialsExpired"`
}

// NewUserResponse projects an account to its API representation.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Roles:              u.Roles,
		AccountLocked:      u.AccountLocked,
		AccountExpired:     u.AccountExpired,
		CredentialsExpired: u.CredentialsExpired,
	}
}

// UserListResponse is a page of accounts.
type UserListResponse struct {
	Users          []UserResponse `json:"users"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// UpdateRolesRequest replaces an account's role set wholesale.
type UpdateRolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=1"`
}

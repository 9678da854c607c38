package dto

// RegistrationRequest is the body for creating a new account.
type RegistrationRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body for authenticating an account.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// ChangePasswordRequest is the body for replacing the caller's own password.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

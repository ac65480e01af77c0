package dto

import "github.com/projectdesk/pma_backend/internal/core/domain"

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token plus the resolved session so
// the client can route without a second round trip.
type LoginResponse struct {
	Token                 string         `json:"token"`
	Session               domain.Session `json:"session"`
	PasswordResetRequired bool           `json:"passwordResetRequired"`
}

// ForgotPasswordRequest starts the emailed reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the emailed reset flow.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePasswordRequest is the self-service path; the old password
// re-authenticates the caller before anything changes.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AdminSetPasswordRequest overwrites another identity's password
// without the old one. Admin only.
type AdminSetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

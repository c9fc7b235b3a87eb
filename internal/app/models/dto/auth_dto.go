package dto

import "github.com/atlasmedia/newsdesk/internal/app/models"

// UserLoginRequest logs a user in by mobile number, creating the account on
// first contact. fcmToken and timeZone refresh the stored values when sent.
type UserLoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required,min=7,max=20"`
	FCMToken     string `json:"fcmToken"`
	TimeZone     string `json:"timeZone"`
}

// AdminLoginRequest authenticates a back-office account.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserLoginResponse returns the upserted user and a bearer token.
type UserLoginResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"`
}

// AdminLoginResponse returns the admin identity and a bearer token.
type AdminLoginResponse struct {
	Admin     AdminData `json:"admin"`
	Token     string    `json:"token"`
	ExpiresIn int       `json:"expiresIn"`
}

// AdminData is the admin shape exposed to clients (never the hash).
type AdminData struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

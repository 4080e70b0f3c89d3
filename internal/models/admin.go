package models

import (
	"database/sql"
	"time"
)

/*
|--------------------------------------------------------------------------
| DATABASE MODEL (INTERNAL)
|--------------------------------------------------------------------------
*/
type Admin struct {
	ID           string
	Email        string
	Password     string
	RefreshToken sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
|--------------------------------------------------------------------------
| RESPONSE DTO
|--------------------------------------------------------------------------
*/
type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func ToAdminResponse(a Admin) AdminResponse {
	return AdminResponse{
		ID:    a.ID,
		Email: a.Email,
	}
}

// Session is the token pair handed out at register and login.
type Session struct {
	Admin        AdminResponse
	AccessToken  string
	RefreshToken string
}

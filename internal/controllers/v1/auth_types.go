package v1

import (
	"github.com/finance-tracker/backend/internal/models"
)

// UserEditable represents the credentials for registration and login
type UserEditable struct {
	Username string `json:"username" example:"ada"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type User struct {
	models.DefaultModel
	Username string `json:"username" example:"ada"` // Name the user logs in with
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
	}
}

// Session is returned on successful registration and login
type Session struct {
	Token string `json:"token"` // Bearer token for the Authorization header
	User  User   `json:"user"`  // The authenticated user
}

type SessionResponse struct {
	Data  *Session `json:"data"`                                                // The session, if authentication succeeded
	Error *string  `json:"error" example:"the username or password is incorrect"` // The error, if any occurred
}

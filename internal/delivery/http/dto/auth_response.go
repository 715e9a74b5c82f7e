package dto

import (
	"liftout/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	AccountType string    `json:"accountType"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func NewAuthResponse(u user.User, access, refresh string) AuthResponse {
	return AuthResponse{
		User: UserResponse{
			UserID:      u.ID,
			Email:       u.Email,
			AccountType: u.AccountType,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}
}

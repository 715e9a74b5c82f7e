package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInternal            = errors.New("internal error")
	ErrTeamNotFound        = errors.New("team not found")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

package dto

import (
	"time"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"asha"`
	Email    string `json:"email" validate:"required,email,max=254" example:"asha@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"s3cret-pass"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,max=50" example:"asha"`
	Password string `json:"password" validate:"required,max=72" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type AccountResponseDTO struct {
	ID               int64     `json:"id" example:"1"`
	Username         string    `json:"username" example:"asha"`
	Email            string    `json:"email" example:"asha@example.com"`
	TotalEarnings    string    `json:"total_earnings" example:"125.50"`
	AvailableBalance string    `json:"available_balance" example:"25.50"`
	AdsWatchedToday  int       `json:"ads_watched_today" example:"4"`
	CurrentStreak    int       `json:"current_streak" example:"3"`
	Role             string    `json:"role" example:"user"`
	IsActive         bool      `json:"is_active" example:"true"`
	CreatedAt        time.Time `json:"created_at" example:"2024-05-03T10:15:00Z"`
}

func NewAccountResponse(a *domain.Account) AccountResponseDTO {
	return AccountResponseDTO{
		ID:               a.ID,
		Username:         a.Username,
		Email:            a.Email,
		TotalEarnings:    Money(a.TotalEarnings),
		AvailableBalance: Money(a.AvailableBalance),
		AdsWatchedToday:  a.AdsWatchedToday,
		CurrentStreak:    a.CurrentStreak,
		Role:             string(a.Role),
		IsActive:         a.IsActive,
		CreatedAt:        a.CreatedAt,
	}
}

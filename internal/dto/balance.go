package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/adrewards/internal/domain"
)

type StatsResponseDTO struct {
	TotalEarnings    string `json:"total_earnings" example:"125.50"`
	AvailableBalance string `json:"available_balance" example:"25.50"`
	AdsWatchedToday  int    `json:"ads_watched_today" example:"4"`
	TodayEarnings    string `json:"today_earnings" example:"20.00"`
	CurrentStreak    int    `json:"current_streak" example:"3"`
}

func NewStatsResponse(s *domain.DailyStats) StatsResponseDTO {
	return StatsResponseDTO{
		TotalEarnings:    Money(s.TotalEarnings),
		AvailableBalance: Money(s.AvailableBalance),
		AdsWatchedToday:  s.AdsWatchedToday,
		TodayEarnings:    Money(s.TodayEarnings),
		CurrentStreak:    s.CurrentStreak,
	}
}

type TransactionResponseDTO struct {
	ID     int64     `json:"id" example:"7"`
	Type   string    `json:"type" example:"withdrawal"`
	Amount string    `json:"amount" example:"-4500.00"`
	Status string    `json:"status" example:"pending"`
	Date   time.Time `json:"date" example:"2024-05-03T10:15:00Z"`
}

func NewTransactionsResponse(txs []domain.Transaction) []TransactionResponseDTO {
	resp := make([]TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		resp[i] = TransactionResponseDTO{
			ID:     tx.ID,
			Type:   string(tx.Kind),
			Amount: Money(tx.Amount),
			Status: tx.Status,
			Date:   tx.Date,
		}
	}
	return resp
}

type WithdrawRequestDTO struct {
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"4500.00"`
	Method  string          `json:"method" validate:"max=20" example:"bank"`
	Details string          `json:"details" validate:"max=500" example:"Asha Rao|123456789012|SBIN0001234|State Bank of India"`
}

type WithdrawalResponseDTO struct {
	ID          int64     `json:"id" example:"7"`
	Amount      string    `json:"amount" example:"4500.00"`
	Method      string    `json:"method" example:"bank"`
	Details     string    `json:"details" example:"Asha Rao|123456789012|SBIN0001234|State Bank of India"`
	Status      string    `json:"status" example:"pending"`
	RequestedAt time.Time `json:"requested_at" example:"2024-05-03T10:15:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-03T10:15:00Z"`
}

func NewWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:          w.ID,
		Amount:      Money(w.Amount),
		Method:      string(w.Method),
		Details:     w.Details,
		Status:      string(w.Status),
		RequestedAt: w.RequestedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func NewWithdrawalsResponse(ws []domain.Withdrawal) []WithdrawalResponseDTO {
	resp := make([]WithdrawalResponseDTO, len(ws))
	for i := range ws {
		resp[i] = NewWithdrawalResponse(&ws[i])
	}
	return resp
}

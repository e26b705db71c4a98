package dto

import "github.com/GlebRadaev/adrewards/internal/domain"

type PlatformStatsResponseDTO struct {
	TotalAccounts      int    `json:"total_accounts" example:"120"`
	ActiveAccounts     int    `json:"active_accounts" example:"118"`
	TotalEarnings      string `json:"total_earnings" example:"15230.50"`
	PendingWithdrawals int    `json:"pending_withdrawals" example:"3"`
	TotalWithdrawals   string `json:"total_withdrawals" example:"9000.00"`
	CompletedViews     int    `json:"completed_views" example:"3046"`
}

func NewPlatformStatsResponse(s *domain.PlatformStats) PlatformStatsResponseDTO {
	return PlatformStatsResponseDTO{
		TotalAccounts:      s.TotalAccounts,
		ActiveAccounts:     s.ActiveAccounts,
		TotalEarnings:      Money(s.TotalEarnings),
		PendingWithdrawals: s.PendingWithdrawals,
		TotalWithdrawals:   Money(s.TotalWithdrawals),
		CompletedViews:     s.CompletedViews,
	}
}

type AdminWithdrawalResponseDTO struct {
	WithdrawalResponseDTO
	AccountID int64  `json:"account_id" example:"1"`
	Username  string `json:"username" example:"asha"`
	Email     string `json:"email" example:"asha@example.com"`
}

func NewAdminWithdrawalsResponse(ws []domain.WithdrawalWithOwner) []AdminWithdrawalResponseDTO {
	resp := make([]AdminWithdrawalResponseDTO, len(ws))
	for i := range ws {
		resp[i] = AdminWithdrawalResponseDTO{
			WithdrawalResponseDTO: NewWithdrawalResponse(&ws[i].Withdrawal),
			AccountID:             ws[i].AccountID,
			Username:              ws[i].Username,
			Email:                 ws[i].Email,
		}
	}
	return resp
}

func NewAccountsResponse(accounts []domain.Account) []AccountResponseDTO {
	resp := make([]AccountResponseDTO, len(accounts))
	for i := range accounts {
		resp[i] = NewAccountResponse(&accounts[i])
	}
	return resp
}

type UpdateWithdrawalRequestDTO struct {
	Status string `json:"status" validate:"required" example:"completed"`
}

// UpdateAccountRequestDTO is a partial update; omitted fields keep their value.
type UpdateAccountRequestDTO struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user operator" example:"operator"`
	IsActive *bool   `json:"is_active,omitempty" example:"false"`
}

func (r UpdateAccountRequestDTO) ToDomain() domain.AccountChanges {
	var changes domain.AccountChanges
	if r.Role != nil {
		role := domain.Role(*r.Role)
		changes.Role = &role
	}
	changes.IsActive = r.IsActive
	return changes
}

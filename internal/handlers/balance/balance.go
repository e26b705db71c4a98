package balance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/dto"
	"github.com/GlebRadaev/adrewards/internal/handlers/httperr"
	"github.com/GlebRadaev/adrewards/pkg/auth"
	"github.com/GlebRadaev/adrewards/pkg/utils"
	"github.com/GlebRadaev/adrewards/pkg/validate"
)

type StatsService interface {
	TodaysStats(ctx context.Context, accountID int64) (*domain.DailyStats, error)
	RecentEarnings(ctx context.Context, accountID int64, limit int) ([]domain.AdView, error)
	TransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}

type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, accountID int64, amount decimal.Decimal, method domain.PaymentMethod, details string) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, accountID int64) ([]domain.Withdrawal, error)
}

type BalanceHandler struct {
	statsService      StatsService
	withdrawalService WithdrawalService
}

func New(statsService StatsService, withdrawalService WithdrawalService) *BalanceHandler {
	return &BalanceHandler{
		statsService:      statsService,
		withdrawalService: withdrawalService,
	}
}

// GetStats godoc
//
//	@Summary		Get today's earning stats
//	@Description	Balances plus ads watched and earnings since local midnight, computed from completed views.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/stats [get]
func (h *BalanceHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	stats, err := h.statsService.TodaysStats(r.Context(), accountID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewStatsResponse(stats))
}

// GetEarnings godoc
//
//	@Summary		Get recent earnings
//	@Description	Completed ad views, newest first. The limit defaults to 10 and is capped at 100.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of entries"
//	@Success		200		{array}		dto.ViewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/earnings [get]
func (h *BalanceHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	views, err := h.statsService.RecentEarnings(r.Context(), accountID, limit)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewViewsResponse(views))
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Earnings (positive) and withdrawals (negative) merged, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	history, err := h.statsService.TransactionHistory(r.Context(), accountID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponse(history))
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve the amount from the available balance and create a pending withdrawal.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Below minimum or invalid payment details"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := dto.CheckPrecision(req.Amount); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.RequestWithdrawal(r.Context(), accountID, req.Amount, domain.PaymentMethod(req.Method), req.Details)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalResponse(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	The caller's withdrawals, newest first
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Success		204	"Withdrawals not found"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	withdrawals, err := h.withdrawalService.ListWithdrawals(r.Context(), accountID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalsResponse(withdrawals))
}

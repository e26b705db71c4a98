package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/dto"
	"github.com/GlebRadaev/adrewards/internal/handlers/httperr"
	"github.com/GlebRadaev/adrewards/pkg/utils"
	"github.com/GlebRadaev/adrewards/pkg/validate"
)

type StatsService interface {
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
}

type AccountService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, id int64, changes domain.AccountChanges) (*domain.Account, error)
}

type WithdrawalService interface {
	ListAllWithdrawals(ctx context.Context) ([]domain.WithdrawalWithOwner, error)
	UpdateWithdrawalStatus(ctx context.Context, id int64, status string) (*domain.Withdrawal, error)
}

type CatalogService interface {
	ListAll(ctx context.Context) ([]domain.Ad, error)
	Get(ctx context.Context, id int64) (*domain.Ad, error)
	Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	Update(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
}

// AdminHandler serves the operator surface. Routes are mounted behind the
// operator role check.
type AdminHandler struct {
	statsService      StatsService
	accountService    AccountService
	withdrawalService WithdrawalService
	catalogService    CatalogService
}

func New(stats StatsService, accounts AccountService, withdrawals WithdrawalService, catalog CatalogService) *AdminHandler {
	return &AdminHandler{
		statsService:      stats,
		accountService:    accounts,
		withdrawalService: withdrawals,
		catalogService:    catalog,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetStats godoc
//
//	@Summary	Platform totals
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.PlatformStatsResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Failure	403	{object}	utils.Response	"Operator role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.PlatformStats(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlatformStatsResponse(stats))
}

// GetAccounts godoc
//
//	@Summary	List accounts
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AccountResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Failure	403	{object}	utils.Response	"Operator role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/accounts [get]
func (h *AdminHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountsResponse(accounts))
}

// UpdateAccount godoc
//
//	@Summary		Change an account's role or active flag
//	@Description	Partial update. Deactivated accounts can no longer log in or start views.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int							true	"Account ID"
//	@Param			request		body		dto.UpdateAccountRequestDTO	true	"Changed fields"
//	@Success		200			{object}	dto.AccountResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"Not authorized"
//	@Failure		403			{object}	utils.Response	"Operator role required"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts/{accountID} [patch]
func (h *AdminHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "accountID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}
	var req dto.UpdateAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(r.Context(), id, req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

// GetWithdrawals godoc
//
//	@Summary	List all withdrawals
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AdminWithdrawalResponseDTO
//	@Failure	401	{object}	utils.Response	"Not authorized"
//	@Failure	403	{object}	utils.Response	"Operator role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/withdrawals [get]
func (h *AdminHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListAllWithdrawals(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdminWithdrawalsResponse(withdrawals))
}

// UpdateWithdrawal godoc
//
//	@Summary		Set a withdrawal status
//	@Description	Any of pending, processing, completed or failed may be set.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			withdrawalID	path		int								true	"Withdrawal ID"
//	@Param			request			body		dto.UpdateWithdrawalRequestDTO	true	"New status"
//	@Success		200				{object}	dto.WithdrawalResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid status"
//	@Failure		402				{object}	utils.Response	"Balance no longer covers the withdrawal"
//	@Failure		404				{object}	utils.Response	"Withdrawal not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{withdrawalID} [patch]
func (h *AdminHandler) UpdateWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "withdrawalID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}
	var req dto.UpdateWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	withdrawal, err := h.withdrawalService.UpdateWithdrawalStatus(r.Context(), id, req.Status)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(withdrawal))
}

// ListAds godoc
//
//	@Summary	List all ads, inactive included
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.AdResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/ads [get]
func (h *AdminHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.catalogService.ListAll(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdsResponse(ads))
}

// CreateAd godoc
//
//	@Summary	Add an ad to the catalog
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateAdRequestDTO	true	"Ad"
//	@Success	201		{object}	dto.AdResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	422		{object}	utils.Response	"Invalid ad"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/ads [post]
func (h *AdminHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := dto.CheckPrecision(req.Reward); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ad, err := h.catalogService.Create(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAdResponse(ad))
}

// UpdateAd godoc
//
//	@Summary		Update an ad
//	@Description	Partial update; omitted fields keep their value. Setting is_active toggles visibility to users.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			adID	path		int						true	"Ad ID"
//	@Param			request	body		dto.UpdateAdRequestDTO	true	"Changed fields"
//	@Success		200		{object}	dto.AdResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Ad not found"
//	@Failure		422		{object}	utils.Response	"Invalid ad"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ads/{adID} [patch]
func (h *AdminHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "adID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}
	var req dto.UpdateAdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Reward != nil {
		if err := dto.CheckPrecision(*req.Reward); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ad, err := h.catalogService.Get(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	req.Apply(ad)

	updated, err := h.catalogService.Update(r.Context(), ad)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdResponse(updated))
}

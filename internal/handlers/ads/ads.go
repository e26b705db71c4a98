package ads

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/dto"
	"github.com/GlebRadaev/adrewards/internal/handlers/httperr"
	"github.com/GlebRadaev/adrewards/pkg/auth"
	"github.com/GlebRadaev/adrewards/pkg/utils"
)

type CatalogService interface {
	ListActive(ctx context.Context) ([]domain.Ad, error)
	GetActive(ctx context.Context, id int64) (*domain.Ad, error)
}

type EarningService interface {
	StartView(ctx context.Context, accountID, adID int64) (*domain.AdView, error)
	CompleteView(ctx context.Context, viewID, accountID int64) (*domain.AdView, error)
}

type AdsHandler struct {
	catalogService CatalogService
	earningService EarningService
}

func New(catalogService CatalogService, earningService EarningService) *AdsHandler {
	return &AdsHandler{
		catalogService: catalogService,
		earningService: earningService,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListAds godoc
//
//	@Summary		List active ads
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ads [get]
func (h *AdsHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.catalogService.ListActive(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdsResponse(ads))
}

// StartView godoc
//
//	@Summary		Start watching an ad
//	@Description	Open a view of an active ad. The reward and duration are fixed at this moment.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			adID	path		int	true	"Ad ID"
//	@Success		201		{object}	dto.ViewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid ad id"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		404		{object}	utils.Response	"Ad not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{adID}/start [post]
func (h *AdsHandler) StartView(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	adID, ok := pathID(r, "adID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}
	ad, err := h.catalogService.GetActive(r.Context(), adID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	view, err := h.earningService.StartView(r.Context(), accountID, ad.ID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewViewResponse(view))
}

// CompleteView godoc
//
//	@Summary		Complete an ad view
//	@Description	Credit the view's reward to the caller's balance. A view is credited at most once.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			viewID	path		int	true	"View ID"
//	@Success		200		{object}	dto.ViewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid view id"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		403		{object}	utils.Response	"View belongs to another account"
//	@Failure		404		{object}	utils.Response	"View not found"
//	@Failure		409		{object}	utils.Response	"View already completed"
//	@Failure		425		{object}	utils.Response	"Ad duration has not elapsed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/views/{viewID}/complete [post]
func (h *AdsHandler) CompleteView(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	viewID, ok := pathID(r, "viewID")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid view id")
		return
	}
	view, err := h.earningService.CompleteView(r.Context(), viewID, accountID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewViewResponse(view))
}

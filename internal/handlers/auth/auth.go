package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/internal/dto"
	"github.com/GlebRadaev/adrewards/internal/handlers/httperr"
	"github.com/GlebRadaev/adrewards/pkg/auth"
	"github.com/GlebRadaev/adrewards/pkg/utils"
	"github.com/GlebRadaev/adrewards/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	IssueToken(ctx context.Context, account *domain.Account) (string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, accountID int64) (*domain.Account, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create an account with zero balances and return a session token in the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username or email already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	account, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	token, err := h.authService.IssueToken(r.Context(), account)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "Account successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate an account
//	@Description	Log in with username and password and get a session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	account, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUnauthorized) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httperr.Respond(w, err)
		return
	}
	token, err := h.authService.IssueToken(r.Context(), account)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Account successfully authenticated",
	})
}

// Logout godoc
//
//	@Summary		Revoke the current session
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Context().Value(auth.TokenKey).(string)

	if err := h.authService.Logout(r.Context(), token); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}

// Profile godoc
//
//	@Summary		Get the current account
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int64)

	account, err := h.authService.Profile(r.Context(), accountID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAccountResponse(account))
}

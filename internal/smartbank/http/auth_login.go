package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/aussiebroadwan/smartbank/pkg/httpx"
)

type LoginHandler struct {
	UserService *service.UserService
	TokenTTL    time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchange email and password for a bearer access token.
//	@Description	Unknown emails and wrong passwords are reported identically.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bankapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	bankapi.TokenResponse	"access_token, token_type"
//	@Failure		400		{object}	bankapi.ErrorResponse	"Invalid input"
//	@Failure		401		{object}	bankapi.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	bankapi.ErrorResponse	"Too many requests"
//	@Failure		500		{object}	bankapi.ErrorResponse	"Internal server error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bankapi.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, _, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bankapi.TokenResponse{
		AccessToken: token,
		TokenType:   bankapi.TokenTypeBearer,
		ExpiresIn:   int(h.TokenTTL.Seconds()),
	})
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/aussiebroadwan/smartbank/pkg/httpx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a customer
//	@Description	Create a customer account. New accounts start with KYC status PENDING.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bankapi.RegisterRequest		true	"Registration details"
//	@Success		201		{object}	bankapi.RegisterResponse	"id, message, email, role"
//	@Failure		400		{object}	bankapi.ErrorResponse		"Invalid input or email already exists"
//	@Failure		429		{object}	bankapi.ErrorResponse		"Too many requests"
//	@Failure		500		{object}	bankapi.ErrorResponse		"Internal server error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req bankapi.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bankapi.RegisterResponse{
		ID:      user.ID,
		Message: "User registered successfully",
		Email:   user.Email,
		Role:    string(user.Role),
	})
}

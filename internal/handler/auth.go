package handler

import (
	"net/http"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), domain.SignUpInput{
		Email:          req.Email,
		Password:       req.Password,
		Username:       req.Username,
		Role:           req.Role,
		PhotoURL:       req.PhotoURL,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) SignIn(c *ginext.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(token))
}

func (h *Handler) SignOut(c *ginext.Context) {
	if err := h.authService.SignOut(c.Request.Context(), identity(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "signed out"})
}

func (h *Handler) Me(c *ginext.Context) {
	ident := identity(c)
	if ident == nil {
		h.handleError(c, domain.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, ident)
}

package handlers

import (
	"blogicum/helper"
	"blogicum/models"
	"blogicum/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, httpHelper *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: httpHelper}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	value, exists := c.Get("claims")
	claims, ok := value.(*services.Claims)
	if !exists || !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Logout success", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID.(uint))
	if err != nil {
		respondError(h.Helper, c, err, "")
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

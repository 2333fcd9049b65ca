package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblens/joblens/internal/services"
	"github.com/joblens/joblens/internal/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
	// Optional stable identity; anonymous sessions get a fresh uuid.
	UserID string `json:"user_id"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	token, userID, err := h.svc.Login(req.Password, req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, UserID: userID})
}

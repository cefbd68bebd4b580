package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/server/http/dto"
	"github.com/notemart/notemart/internal/server/http/middleware"
)

// AuthHandler manages registration, login and profile endpoints.
type AuthHandler struct {
	facade   AuthFacade
	tokenTTL time.Duration
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(facade AuthFacade, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{facade: facade, tokenTTL: tokenTTL}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("name, email and password are required"))
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token, int(h.tokenTTL.Seconds()))
	c.JSON(http.StatusCreated, dto.OKMessage("registration successful", dto.AuthResult{
		Token: token,
		User:  dto.FromUser(user),
	}))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("email and password are required"))
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token, int(h.tokenTTL.Seconds()))
	c.JSON(http.StatusOK, dto.OKMessage("login successful", dto.AuthResult{
		Token: token,
		User:  dto.FromUser(user),
	}))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromUser(user)))
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.SetAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.OKMessage("logged out", nil))
}

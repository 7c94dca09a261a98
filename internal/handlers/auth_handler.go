package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hustlepro/internal/models"
	"hustlepro/internal/services"
	"hustlepro/internal/utils"
)

const refreshTTL = 30 * 24 * time.Hour

type AuthHandler struct {
	userService services.UserService
	authService services.AuthService
}

func NewAuthHandler(userService services.UserService, authService services.AuthService) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService}
}

// @Summary      Register an account
// @Description  Creates a new user and returns access and refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Registration data"
// @Success      201       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][register] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		log.Printf("[auth][register] failed for email=%q: err=%v", req.Email, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[auth][register] created userID=%s email=%q", user.ID, user.Email)

	tokens, err := h.issueTokens(c, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    user,
		"tokens":  tokens,
	})
}

// @Summary      Log in
// @Description  Authenticates a user and returns access and refresh tokens
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Login data"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)
	log.Printf("[auth][login] attempt email=%q", email)

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil || user == nil {
		log.Printf("[auth][login] user not found by email=%q: err=%v", email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, strings.TrimSpace(req.Password)); err != nil {
		log.Printf("[auth][login] password mismatch for userID=%s email=%q", user.ID, email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	tokens, err := h.issueTokens(c, user.ID)
	if err != nil {
		log.Printf("[auth][login] token issue failed for userID=%s: err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	log.Printf("[auth][login] success userID=%s took=%s", user.ID, time.Since(start).Truncate(time.Millisecond))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user, // PasswordHash is json:"-", it never leaves
		"tokens":  tokens,
	})
}

// @Summary      Refresh tokens
// @Description  Rotates the refresh token and issues a new access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	old := strings.TrimSpace(req.RefreshToken)
	userID, err := h.userService.LookupRefreshToken(c.Request.Context(), old)
	if err != nil || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	// rotate
	if err := h.userService.RevokeRefreshToken(c.Request.Context(), old); err != nil {
		log.Printf("[auth][refresh] revoke failed for userID=%s: err=%v", userID, err)
	}
	tokens, err := h.issueTokens(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) issueTokens(c *gin.Context, userID string) (gin.H, error) {
	access, _, err := h.authService.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.NewRefreshToken(32)
	if err != nil {
		return nil, err
	}
	if err := h.userService.StoreRefreshToken(c.Request.Context(), refresh, userID, time.Now().Add(refreshTTL)); err != nil {
		return nil, err
	}
	return gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	}, nil
}

package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pagamentos/config"
	"pagamentos/middleware"
	"pagamentos/models"
	"pagamentos/service"
)

// AuthHandler account and session endpoints
type AuthHandler struct {
	cfg  *config.Config
	auth *service.AuthService
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(cfg *config.Config, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, auth: auth}
}

// RegisterRequest registration form
type RegisterRequest struct {
	Name     string `json:"name" form:"name" example:"Ana Souza"`
	Email    string `json:"email" form:"email" example:"ana@example.com"`
	Password string `json:"password" form:"password" example:"S3nha!forte"`
}

// LoginRequest login form
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"ana@example.com"`
	Password string `json:"password" form:"password" example:"S3nha!forte"`
}

// LoginResponse issued session
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Register creates an account
// @Summary Register
// @Description Creates an account. The password needs 8+ characters with upper-case, lower-case, digit and symbol.
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body RegisterRequest true "Account"
// @Success 200 {object} Response{data=models.User} "Registered"
// @Failure 400 {object} Response{data=ValidationErrors} "Weak password, duplicate email or missing field"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request."))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "User not found.", "Failed to register user.")
		return
	}
	SuccessWithMessage(c, "User registered successfully!", user)
}

// Login starts a session
// @Summary Login
// @Description Checks email and password, returns a JWT and sets it as the token cookie.
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response{data=LoginResponse} "Logged in"
// @Failure 401 {object} Response "Invalid credentials"
// @Failure 429 {object} Response "Too many attempts"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request."))
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "User not found.", "Login failed.")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to issue token."))
		return
	}
	setSessionCookie(c, token, int(h.cfg.JWT.ExpireTime.Seconds()))

	SuccessWithMessage(c, "Login successful!", LoginResponse{
		Token:    token,
		UserInfo: *user,
	})
}

// Logout ends the session
// @Summary Logout
// @Description Clears the token cookie. Bearer tokens simply expire.
// @Tags auth
// @Produce json
// @Success 200 {object} Response "Logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	SuccessWithMessage(c, "Logout successful!", nil)
}

// GetProfile current user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "User"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.auth.Current(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// account removed after the token was issued
			clearSessionCookie(c)
			Unauthorized(c, "Please log in to access this page.")
			return
		}
		respondError(c, err, "User not found.", "Failed to load user.")
		return
	}
	Success(c, user)
}

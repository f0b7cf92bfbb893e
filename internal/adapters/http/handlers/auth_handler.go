package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"snp-mealhub/internal/config"
	"snp-mealhub/internal/core/domain"
	"snp-mealhub/internal/core/services"
	"snp-mealhub/internal/pkg/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user and return bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	req.Username = strings.TrimSpace(req.Username)

	result, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Unknown user and wrong password share one message; no
			// account enumeration.
			return response.Unauthorized(c, "Login failed")
		case errors.Is(err, domain.ErrUserInactive):
			return response.Forbidden(c, "User account is inactive")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Register handles account creation (phase one of provisioning, admin only)
// @Summary Create account
// @Description Create a new account; officer roles require a follow-up details form
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RegisterInput true "Account data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	result, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		var vErr *domain.ValidationError
		var conflict *domain.ActiveOfficerConflictError
		switch {
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		case errors.Is(err, domain.ErrPasswordMismatch):
			return response.BadRequest(c, "Password confirmation does not match")
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		case errors.Is(err, domain.ErrDuplicateUsername):
			return response.Conflict(c, "Username already exists")
		case errors.As(err, &conflict):
			// Provisioning pauses here; the operator must deactivate the
			// named account (or cancel) and resubmit.
			return response.ActiveOfficerConflict(c, "Another active officer exists for this role", conflict)
		default:
			return response.InternalServerError(c, "Failed to create account")
		}
	}

	return response.Created(c, "Account created successfully", result)
}

// ResetPassword handles password reset
// @Summary Reset password
// @Description Change password after verifying the old one
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.ResetPasswordInput true "Reset data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req services.ResetPasswordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.OldPassword == "" || req.NewPassword == "" {
		return response.BadRequest(c, "Username, old password and new password are required")
	}

	if err := h.authService.ResetPassword(c.Context(), &req); err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Login failed")
		default:
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.Success(c, "Password reset successfully", nil)
}

// CSRFToken returns the anti-forgery token and sets the matching cookie
// @Summary Get CSRF token
// @Description Returns the anti-forgery token matching the response cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /csrf-token [get]
func (h *AuthHandler) CSRFToken(c *fiber.Ctx) error {
	token, _ := c.Locals("csrfToken").(string)
	return c.JSON(fiber.Map{
		"csrfToken": token,
	})
}

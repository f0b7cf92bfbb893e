package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"snp-mealhub/internal/core/domain"
	"snp-mealhub/internal/core/services"
	"snp-mealhub/internal/pkg/response"
)

// DetailHandler handles officer detail endpoints (phase two of provisioning)
type DetailHandler struct {
	detailService *services.DetailService
}

// NewDetailHandler creates a new detail handler
func NewDetailHandler(detailService *services.DetailService) *DetailHandler {
	return &DetailHandler{
		detailService: detailService,
	}
}

func (h *DetailHandler) roleParam(c *fiber.Ctx) (domain.Role, error) {
	role, err := domain.ParseRole(c.Params("role"))
	if err != nil || !role.IsOfficer() {
		return "", domain.ErrInvalidRole
	}
	return role, nil
}

// targetParam resolves the subject of the request: an explicit :userId
// when present, otherwise the caller's own account.
func (h *DetailHandler) targetParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("userId")
	if raw == "" {
		return c.Locals("userID").(uint), nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return uint(id), nil
}

// CreateDetail handles submitting the officer details form
// @Summary Submit officer details
// @Description Attach the details record to an officer account
// @Tags UserDetails
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param role path string true "Officer role" Enums(deo, vo)
// @Param userId path int false "Target user ID (defaults to self)"
// @Param body body services.DetailInput true "Officer details"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /user-details/{role}/{userId} [post]
func (h *DetailHandler) CreateDetail(c *fiber.Ctx) error {
	role, err := h.roleParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid officer role")
	}
	targetID, err := h.targetParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req services.DetailInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	actorID := c.Locals("userID").(uint)
	actorRole := c.Locals("role").(domain.Role)

	detail, err := h.detailService.CreateDetail(c.Context(), actorID, actorRole, targetID, role, &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Not allowed to manage this account")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrRoleMismatch):
			return response.BadRequest(c, "Account role does not match the requested officer role")
		case errors.Is(err, domain.ErrDetailExists):
			return response.Conflict(c, "Officer details already exist for this account")
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		default:
			return response.InternalServerError(c, "Failed to save officer details")
		}
	}

	return response.Created(c, "Officer details saved successfully", detail)
}

// GetDetail handles fetching an officer's details
// @Summary Get officer details
// @Tags UserDetails
// @Produce json
// @Security BearerAuth
// @Param role path string true "Officer role" Enums(deo, vo)
// @Param userId path int false "Target user ID (defaults to self)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-details/{role}/{userId} [get]
func (h *DetailHandler) GetDetail(c *fiber.Ctx) error {
	if _, err := h.roleParam(c); err != nil {
		return response.BadRequest(c, "Invalid officer role")
	}
	targetID, err := h.targetParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	actorID := c.Locals("userID").(uint)
	actorRole := c.Locals("role").(domain.Role)

	detail, err := h.detailService.GetDetail(c.Context(), actorID, actorRole, targetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Not allowed to view this account")
		case errors.Is(err, domain.ErrDetailNotFound):
			return response.NotFound(c, "Officer details not found")
		default:
			return response.InternalServerError(c, "Failed to get officer details")
		}
	}

	return response.Success(c, "Officer details retrieved successfully", detail)
}

// UpdateDetail handles editing an officer's details
// @Summary Update officer details
// @Tags UserDetails
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param role path string true "Officer role" Enums(deo, vo)
// @Param userId path int false "Target user ID (defaults to self)"
// @Param body body services.DetailInput true "Officer details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-details/{role}/{userId} [put]
func (h *DetailHandler) UpdateDetail(c *fiber.Ctx) error {
	if _, err := h.roleParam(c); err != nil {
		return response.BadRequest(c, "Invalid officer role")
	}
	targetID, err := h.targetParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req services.DetailInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	actorID := c.Locals("userID").(uint)
	actorRole := c.Locals("role").(domain.Role)

	detail, err := h.detailService.UpdateDetail(c.Context(), actorID, actorRole, targetID, &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Not allowed to manage this account")
		case errors.Is(err, domain.ErrDetailNotFound):
			return response.NotFound(c, "Officer details not found")
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		default:
			return response.InternalServerError(c, "Failed to update officer details")
		}
	}

	return response.Success(c, "Officer details updated successfully", detail)
}

// GetActiveDetail returns the details of the currently active officer
// for a role, for display on vouchers and reports
// @Summary Get active officer details by role
// @Tags UserDetails
// @Produce json
// @Security BearerAuth
// @Param role path string true "Officer role" Enums(deo, vo)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /user-details/active/{role} [get]
func (h *DetailHandler) GetActiveDetail(c *fiber.Ctx) error {
	role, err := h.roleParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid officer role")
	}

	detail, err := h.detailService.GetActiveDetail(c.Context(), role)
	if err != nil {
		if errors.Is(err, domain.ErrDetailNotFound) {
			return response.NotFound(c, "No active officer found for this role")
		}
		return response.InternalServerError(c, "Failed to get active officer details")
	}

	return response.Success(c, "Active officer details retrieved successfully", detail)
}

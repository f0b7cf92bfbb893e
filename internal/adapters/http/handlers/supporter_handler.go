package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"snp-mealhub/internal/core/domain"
	"snp-mealhub/internal/core/services"
	"snp-mealhub/internal/pkg/pagination"
	"snp-mealhub/internal/pkg/response"
)

// SupporterHandler handles program supporter endpoints
type SupporterHandler struct {
	supporterService *services.SupporterService
}

// NewSupporterHandler creates a new supporter handler
func NewSupporterHandler(supporterService *services.SupporterService) *SupporterHandler {
	return &SupporterHandler{
		supporterService: supporterService,
	}
}

// ListSupporters handles listing supporters with search and pagination
// @Summary List supporters
// @Tags Supporters
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Name filter"
// @Success 200 {object} response.Response
// @Router /supporters [get]
func (h *SupporterHandler) ListSupporters(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	supporters, total, err := h.supporterService.List(c.Context(), params.Search, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list supporters")
	}

	return response.Success(c, "Supporters retrieved successfully",
		pagination.NewResponse(supporters, params, total))
}

// GetSupporter handles fetching a supporter by ID
// @Summary Get supporter by ID
// @Tags Supporters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supporter ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /supporters/{id} [get]
func (h *SupporterHandler) GetSupporter(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supporter ID")
	}

	supporter, err := h.supporterService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Supporter not found")
		}
		return response.InternalServerError(c, "Failed to get supporter")
	}

	return response.Success(c, "Supporter retrieved successfully", supporter)
}

// CreateSupporter handles registering a supporter
// @Summary Create supporter
// @Tags Supporters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SupporterInput true "Supporter data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /supporters [post]
func (h *SupporterHandler) CreateSupporter(c *fiber.Ctx) error {
	var req services.SupporterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	supporter, err := h.supporterService.Create(c.Context(), &req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return response.ValidationFailed(c, vErr.Fields)
		}
		return response.InternalServerError(c, "Failed to create supporter")
	}

	return response.Created(c, "Supporter created successfully", supporter)
}

// UpdateSupporter handles editing a supporter
// @Summary Update supporter
// @Tags Supporters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supporter ID"
// @Param body body services.SupporterInput true "Supporter data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /supporters/{id} [put]
func (h *SupporterHandler) UpdateSupporter(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supporter ID")
	}

	var req services.SupporterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	supporter, err := h.supporterService.Update(c.Context(), uint(id), &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Supporter not found")
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		default:
			return response.InternalServerError(c, "Failed to update supporter")
		}
	}

	return response.Success(c, "Supporter updated successfully", supporter)
}

// DeleteSupporter handles removing a supporter
// @Summary Delete supporter
// @Tags Supporters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supporter ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /supporters/{id} [delete]
func (h *SupporterHandler) DeleteSupporter(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid supporter ID")
	}

	if err := h.supporterService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Supporter not found")
		}
		return response.InternalServerError(c, "Failed to delete supporter")
	}

	return response.Success(c, "Supporter deleted successfully", nil)
}

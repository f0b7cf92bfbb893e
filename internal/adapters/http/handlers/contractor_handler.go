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

// ContractorHandler handles meal contractor endpoints
type ContractorHandler struct {
	contractorService *services.ContractorService
}

// NewContractorHandler creates a new contractor handler
func NewContractorHandler(contractorService *services.ContractorService) *ContractorHandler {
	return &ContractorHandler{
		contractorService: contractorService,
	}
}

// ListContractors handles listing contractors with search and pagination
// @Summary List contractors
// @Tags Contractors
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Name filter"
// @Success 200 {object} response.Response
// @Router /contractors [get]
func (h *ContractorHandler) ListContractors(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	contractors, total, err := h.contractorService.List(c.Context(), params.Search, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list contractors")
	}

	return response.Success(c, "Contractors retrieved successfully",
		pagination.NewResponse(contractors, params, total))
}

// GetContractor handles fetching a contractor by ID
// @Summary Get contractor by ID
// @Tags Contractors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contractor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contractors/{id} [get]
func (h *ContractorHandler) GetContractor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid contractor ID")
	}

	contractor, err := h.contractorService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Contractor not found")
		}
		return response.InternalServerError(c, "Failed to get contractor")
	}

	return response.Success(c, "Contractor retrieved successfully", contractor)
}

// CreateContractor handles registering a contractor
// @Summary Create contractor
// @Tags Contractors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ContractorInput true "Contractor data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contractors [post]
func (h *ContractorHandler) CreateContractor(c *fiber.Ctx) error {
	var req services.ContractorInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contractor, err := h.contractorService.Create(c.Context(), &req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return response.ValidationFailed(c, vErr.Fields)
		}
		return response.InternalServerError(c, "Failed to create contractor")
	}

	return response.Created(c, "Contractor created successfully", contractor)
}

// UpdateContractor handles editing a contractor
// @Summary Update contractor
// @Tags Contractors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contractor ID"
// @Param body body services.ContractorInput true "Contractor data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contractors/{id} [put]
func (h *ContractorHandler) UpdateContractor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid contractor ID")
	}

	var req services.ContractorInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	contractor, err := h.contractorService.Update(c.Context(), uint(id), &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Contractor not found")
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		default:
			return response.InternalServerError(c, "Failed to update contractor")
		}
	}

	return response.Success(c, "Contractor updated successfully", contractor)
}

// DeleteContractor handles removing a contractor
// @Summary Delete contractor
// @Tags Contractors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contractor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contractors/{id} [delete]
func (h *ContractorHandler) DeleteContractor(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid contractor ID")
	}

	if err := h.contractorService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Contractor not found")
		}
		return response.InternalServerError(c, "Failed to delete contractor")
	}

	return response.Success(c, "Contractor deleted successfully", nil)
}

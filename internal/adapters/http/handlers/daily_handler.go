package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"snp-mealhub/internal/core/domain"
	"snp-mealhub/internal/core/services"
	"snp-mealhub/internal/pkg/pagination"
	"snp-mealhub/internal/pkg/response"
)

// DailyHandler handles daily meal record endpoints
type DailyHandler struct {
	dailyService *services.DailyService
}

// NewDailyHandler creates a new daily record handler
func NewDailyHandler(dailyService *services.DailyService) *DailyHandler {
	return &DailyHandler{
		dailyService: dailyService,
	}
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListRecords handles listing daily meal records, optionally filtered by
// a date range
// @Summary List daily meal records
// @Tags DailyRecords
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /daily-records [get]
func (h *DailyHandler) ListRecords(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		return response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
	}

	records, total, err := h.dailyService.List(c.Context(), from, to, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list daily records")
	}

	return response.Success(c, "Daily records retrieved successfully",
		pagination.NewResponse(records, params, total))
}

// GetRecord handles fetching a daily record by ID
// @Summary Get daily record by ID
// @Tags DailyRecords
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /daily-records/{id} [get]
func (h *DailyHandler) GetRecord(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid record ID")
	}

	record, err := h.dailyService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Daily record not found")
		}
		return response.InternalServerError(c, "Failed to get daily record")
	}

	return response.Success(c, "Daily record retrieved successfully", record)
}

// CreateRecord handles entering a daily meal record (Data Entry Officer)
// @Summary Create daily meal record
// @Tags DailyRecords
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DailyRecordInput true "Record data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /daily-records [post]
func (h *DailyHandler) CreateRecord(c *fiber.Ctx) error {
	var req services.DailyRecordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	creatorID := c.Locals("userID").(uint)

	record, err := h.dailyService.Create(c.Context(), creatorID, &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		case errors.Is(err, domain.ErrNotFound):
			return response.BadRequest(c, "Contractor not found")
		default:
			return response.InternalServerError(c, "Failed to create daily record")
		}
	}

	return response.Created(c, "Daily record created successfully", record)
}

// UpdateRecord handles correcting a daily meal record
// @Summary Update daily meal record
// @Tags DailyRecords
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param body body services.DailyRecordInput true "Record data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /daily-records/{id} [put]
func (h *DailyHandler) UpdateRecord(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid record ID")
	}

	var req services.DailyRecordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.dailyService.Update(c.Context(), uint(id), &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Daily record not found")
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		default:
			return response.InternalServerError(c, "Failed to update daily record")
		}
	}

	return response.Success(c, "Daily record updated successfully", record)
}

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

// VoucherHandler handles payment voucher endpoints
type VoucherHandler struct {
	voucherService *services.VoucherService
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
	}
}

// ListVouchers handles listing vouchers, optionally filtered by status
// @Summary List vouchers
// @Tags Vouchers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Success 200 {object} response.Response
// @Router /vouchers [get]
func (h *VoucherHandler) ListVouchers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := c.Query("status")

	vouchers, total, err := h.voucherService.List(c.Context(), status, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list vouchers")
	}

	return response.Success(c, "Vouchers retrieved successfully",
		pagination.NewResponse(vouchers, params, total))
}

// GetVoucher handles fetching a voucher by ID
// @Summary Get voucher by ID
// @Tags Vouchers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voucher ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vouchers/{id} [get]
func (h *VoucherHandler) GetVoucher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid voucher ID")
	}

	voucher, err := h.voucherService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrVoucherNotFound) {
			return response.NotFound(c, "Voucher not found")
		}
		return response.InternalServerError(c, "Failed to get voucher")
	}

	return response.Success(c, "Voucher retrieved successfully", voucher)
}

// IssueVoucher handles issuing a payment voucher (Data Entry Officer)
// @Summary Issue voucher
// @Description Issue a payment voucher for a contractor's monthly period
// @Tags Vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.IssueVoucherInput true "Voucher data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /vouchers [post]
func (h *VoucherHandler) IssueVoucher(c *fiber.Ctx) error {
	var req services.IssueVoucherInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	issuerID := c.Locals("userID").(uint)

	voucher, err := h.voucherService.Issue(c.Context(), issuerID, &req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return response.ValidationFailed(c, vErr.Fields)
		case errors.Is(err, domain.ErrNotFound):
			return response.BadRequest(c, "Contractor not found")
		default:
			return response.InternalServerError(c, "Failed to issue voucher")
		}
	}

	return response.Created(c, "Voucher issued successfully", voucher)
}

// ApproveVoucher handles approving a pending voucher (Verification Officer)
// @Summary Approve voucher
// @Tags Vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voucher ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vouchers/{id}/approve [put]
func (h *VoucherHandler) ApproveVoucher(c *fiber.Ctx) error {
	return h.decide(c, true)
}

// RejectVoucher handles rejecting a pending voucher (Verification Officer)
// @Summary Reject voucher
// @Tags Vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voucher ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vouchers/{id}/reject [put]
func (h *VoucherHandler) RejectVoucher(c *fiber.Ctx) error {
	return h.decide(c, false)
}

func (h *VoucherHandler) decide(c *fiber.Ctx, approve bool) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid voucher ID")
	}

	var req struct {
		Remark string `json:"remark"`
	}
	// Body is optional for decisions; an empty body keeps remark blank
	_ = c.BodyParser(&req)

	deciderID := c.Locals("userID").(uint)

	voucher, err := h.voucherService.Decide(c.Context(), deciderID, uint(id), approve, req.Remark)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVoucherNotFound):
			return response.NotFound(c, "Voucher not found")
		case errors.Is(err, domain.ErrVoucherDecided):
			return response.Conflict(c, "Voucher has already been decided")
		default:
			return response.InternalServerError(c, "Failed to decide voucher")
		}
	}

	msg := "Voucher approved successfully"
	if !approve {
		msg = "Voucher rejected successfully"
	}
	return response.Success(c, msg, voucher)
}

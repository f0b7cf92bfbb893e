package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/adapters/persistence/repositories"
	"snp-mealhub/internal/core/domain"
)

// VoucherService handles payment voucher issue and verification
type VoucherService struct {
	voucherRepo    repositories.VoucherRepository
	contractorRepo repositories.ContractorRepository
	detailRepo     repositories.DetailRepository
	dailyRepo      repositories.DailyRecordRepository
}

// NewVoucherService creates a new voucher service
func NewVoucherService(
	voucherRepo repositories.VoucherRepository,
	contractorRepo repositories.ContractorRepository,
	detailRepo repositories.DetailRepository,
	dailyRepo repositories.DailyRecordRepository,
) *VoucherService {
	return &VoucherService{
		voucherRepo:    voucherRepo,
		contractorRepo: contractorRepo,
		detailRepo:     detailRepo,
		dailyRepo:      dailyRepo,
	}
}

// IssueVoucherInput represents voucher issue input. A zero amount means
// "total the daily meal records for the period".
type IssueVoucherInput struct {
	Period       string  `json:"period"` // YYYY-MM
	ContractorID uint    `json:"contractor_id"`
	Amount       float64 `json:"amount"`
	Remark       string  `json:"remark"`
}

// Issue creates a pending voucher for a contractor. Officer names are
// snapshotted from the currently active officers' details.
func (s *VoucherService) Issue(ctx context.Context, issuerID uint, input *IssueVoucherInput) (*models.Voucher, error) {
	from, to, err := parsePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	if _, err := s.contractorRepo.GetByID(ctx, input.ContractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	amount := input.Amount
	if amount <= 0 {
		amount, err = s.dailyRepo.SumAmountByPeriod(ctx, input.ContractorID, from, to)
		if err != nil {
			return nil, err
		}
	}

	voucher := &models.Voucher{
		VoucherNo:    newVoucherNo(input.Period),
		Period:       input.Period,
		ContractorID: input.ContractorID,
		Amount:       amount,
		Status:       models.VoucherPending,
		IssuedBy:     issuerID,
		Remark:       strings.TrimSpace(input.Remark),
	}

	// Officer names are best-effort snapshots; a missing active officer
	// leaves the field blank rather than blocking the voucher.
	if deo, err := s.detailRepo.GetActiveByRole(ctx, domain.RoleDataEntry); err == nil {
		voucher.DEOName = deo.FullName
	}
	if vo, err := s.detailRepo.GetActiveByRole(ctx, domain.RoleVerification); err == nil {
		voucher.VOName = vo.FullName
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	logrus.Infof("✅ Voucher issued: %s (contractor=%d, amount=%.2f)", voucher.VoucherNo, voucher.ContractorID, voucher.Amount)

	return voucher, nil
}

// Decide records the verification officer's approve/reject decision. A
// voucher can only be decided once.
func (s *VoucherService) Decide(ctx context.Context, deciderID uint, voucherID uint, approve bool, remark string) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, err
	}

	if voucher.IsDecided() {
		return nil, domain.ErrVoucherDecided
	}

	now := time.Now()
	voucher.Status = models.VoucherRejected
	if approve {
		voucher.Status = models.VoucherApproved
	}
	voucher.DecidedBy = &deciderID
	voucher.DecidedAt = &now
	if remark != "" {
		voucher.Remark = strings.TrimSpace(remark)
	}

	if err := s.voucherRepo.Update(ctx, voucher); err != nil {
		return nil, err
	}

	logrus.Infof("✅ Voucher %s %s", voucher.VoucherNo, voucher.Status)

	return voucher, nil
}

// Get fetches a voucher by ID
func (s *VoucherService) Get(ctx context.Context, id uint) (*models.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVoucherNotFound
		}
		return nil, err
	}
	return voucher, nil
}

// List lists vouchers with an optional status filter
func (s *VoucherService) List(ctx context.Context, status string, offset, limit int) ([]*models.Voucher, int64, error) {
	return s.voucherRepo.List(ctx, status, offset, limit)
}

// parsePeriod resolves a YYYY-MM period to its first and last day.
func parsePeriod(period string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01", period)
	if err != nil {
		v := &domain.ValidationError{}
		v.Add("period", "must be in YYYY-MM format")
		return time.Time{}, time.Time{}, v
	}
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}

// newVoucherNo builds a unique human-scannable voucher reference.
func newVoucherNo(period string) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("V-%s-%s", period, suffix)
}

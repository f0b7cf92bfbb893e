package repositories

import (
	"context"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
)

// voucherRepository implements VoucherRepository interface
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository
func NewVoucherRepository(db *gorm.DB) VoucherRepository {
	return &voucherRepository{db: db}
}

// Create creates a new voucher
func (r *voucherRepository) Create(ctx context.Context, voucher *models.Voucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

// GetByID gets a voucher by ID
func (r *voucherRepository) GetByID(ctx context.Context, id uint) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.WithContext(ctx).Preload("Contractor").Where("id = ?", id).First(&voucher).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// Update updates a voucher
func (r *voucherRepository) Update(ctx context.Context, voucher *models.Voucher) error {
	return r.db.WithContext(ctx).Save(voucher).Error
}

// List lists vouchers with optional status filter and pagination
func (r *voucherRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.Voucher, int64, error) {
	var vouchers []*models.Voucher
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Voucher{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Contractor").
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&vouchers).Error
	if err != nil {
		return nil, 0, err
	}

	return vouchers, total, nil
}

package repositories

import (
	"context"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/core/domain"
)

// detailRepository implements DetailRepository interface
type detailRepository struct {
	db *gorm.DB
}

// NewDetailRepository creates a new officer detail repository
func NewDetailRepository(db *gorm.DB) DetailRepository {
	return &detailRepository{db: db}
}

// Create creates a new officer detail record
func (r *detailRepository) Create(ctx context.Context, detail *models.OfficerDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// GetByUserID gets officer details by owning account ID
func (r *detailRepository) GetByUserID(ctx context.Context, userID uint) (*models.OfficerDetail, error) {
	var detail models.OfficerDetail
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetActiveByRole gets the details of the currently active officer for a role
func (r *detailRepository) GetActiveByRole(ctx context.Context, role domain.Role) (*models.OfficerDetail, error) {
	var detail models.OfficerDetail
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = officer_details.user_id").
		Where("users.role = ? AND users.is_active = ? AND users.deleted_at IS NULL", string(role), true).
		First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update updates an officer detail record
func (r *detailRepository) Update(ctx context.Context, detail *models.OfficerDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

// ExistsByUserID checks if details exist for an account
func (r *detailRepository) ExistsByUserID(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OfficerDetail{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

package repositories

import (
	"context"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
)

// supporterRepository implements SupporterRepository interface
type supporterRepository struct {
	db *gorm.DB
}

// NewSupporterRepository creates a new supporter repository
func NewSupporterRepository(db *gorm.DB) SupporterRepository {
	return &supporterRepository{db: db}
}

// Create creates a new supporter
func (r *supporterRepository) Create(ctx context.Context, supporter *models.Supporter) error {
	return r.db.WithContext(ctx).Create(supporter).Error
}

// GetByID gets a supporter by ID
func (r *supporterRepository) GetByID(ctx context.Context, id uint) (*models.Supporter, error) {
	var supporter models.Supporter
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&supporter).Error
	if err != nil {
		return nil, err
	}
	return &supporter, nil
}

// Update updates a supporter
func (r *supporterRepository) Update(ctx context.Context, supporter *models.Supporter) error {
	return r.db.WithContext(ctx).Save(supporter).Error
}

// Delete soft deletes a supporter
func (r *supporterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Supporter{}, id).Error
}

// List lists supporters with optional name search and pagination
func (r *supporterRepository) List(ctx context.Context, search string, offset, limit int) ([]*models.Supporter, int64, error) {
	var supporters []*models.Supporter
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Supporter{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name").Find(&supporters).Error; err != nil {
		return nil, 0, err
	}

	return supporters, total, nil
}

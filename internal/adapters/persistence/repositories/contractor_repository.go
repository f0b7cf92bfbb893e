package repositories

import (
	"context"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
)

// contractorRepository implements ContractorRepository interface
type contractorRepository struct {
	db *gorm.DB
}

// NewContractorRepository creates a new contractor repository
func NewContractorRepository(db *gorm.DB) ContractorRepository {
	return &contractorRepository{db: db}
}

// Create creates a new contractor
func (r *contractorRepository) Create(ctx context.Context, contractor *models.Contractor) error {
	return r.db.WithContext(ctx).Create(contractor).Error
}

// GetByID gets a contractor by ID
func (r *contractorRepository) GetByID(ctx context.Context, id uint) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contractor).Error
	if err != nil {
		return nil, err
	}
	return &contractor, nil
}

// Update updates a contractor
func (r *contractorRepository) Update(ctx context.Context, contractor *models.Contractor) error {
	return r.db.WithContext(ctx).Save(contractor).Error
}

// Delete soft deletes a contractor
func (r *contractorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Contractor{}, id).Error
}

// List lists contractors with optional name search and pagination
func (r *contractorRepository) List(ctx context.Context, search string, offset, limit int) ([]*models.Contractor, int64, error) {
	var contractors []*models.Contractor
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Contractor{})
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name").Find(&contractors).Error; err != nil {
		return nil, 0, err
	}

	return contractors, total, nil
}

package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
)

// dailyRecordRepository implements DailyRecordRepository interface
type dailyRecordRepository struct {
	db *gorm.DB
}

// NewDailyRecordRepository creates a new daily meal record repository
func NewDailyRecordRepository(db *gorm.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

// Create creates a new daily meal record
func (r *dailyRecordRepository) Create(ctx context.Context, record *models.DailyMealRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByID gets a daily meal record by ID
func (r *dailyRecordRepository) GetByID(ctx context.Context, id uint) (*models.DailyMealRecord, error) {
	var record models.DailyMealRecord
	err := r.db.WithContext(ctx).Preload("Contractor").Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update updates a daily meal record
func (r *dailyRecordRepository) Update(ctx context.Context, record *models.DailyMealRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// List lists daily meal records in a date range with pagination
func (r *dailyRecordRepository) List(ctx context.Context, from, to *time.Time, offset, limit int) ([]*models.DailyMealRecord, int64, error) {
	var records []*models.DailyMealRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&models.DailyMealRecord{})
	if from != nil {
		query = query.Where("record_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("record_date <= ?", *to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Contractor").
		Offset(offset).Limit(limit).
		Order("record_date DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// SumAmountByPeriod totals the recorded meal amounts for a contractor in a
// date range. Used to prefill voucher amounts.
func (r *dailyRecordRepository) SumAmountByPeriod(ctx context.Context, contractorID uint, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.DailyMealRecord{}).
		Where("contractor_id = ? AND record_date BETWEEN ? AND ?", contractorID, from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

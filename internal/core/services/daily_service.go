package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/adapters/persistence/repositories"
	"snp-mealhub/internal/core/domain"
)

// DailyService handles daily meal-count records
type DailyService struct {
	dailyRepo      repositories.DailyRecordRepository
	contractorRepo repositories.ContractorRepository
}

// NewDailyService creates a new daily record service
func NewDailyService(dailyRepo repositories.DailyRecordRepository, contractorRepo repositories.ContractorRepository) *DailyService {
	return &DailyService{
		dailyRepo:      dailyRepo,
		contractorRepo: contractorRepo,
	}
}

// DailyRecordInput represents a daily meal-count entry
type DailyRecordInput struct {
	RecordDate   string  `json:"record_date"` // YYYY-MM-DD
	SchoolName   string  `json:"school_name"`
	ContractorID uint    `json:"contractor_id"`
	StudentCount int     `json:"student_count"`
	MealsServed  int     `json:"meals_served"`
	UnitPrice    float64 `json:"unit_price"`
}

func (in *DailyRecordInput) validate() (time.Time, error) {
	v := &domain.ValidationError{}

	date, err := time.Parse("2006-01-02", in.RecordDate)
	if err != nil {
		v.Add("record_date", "must be in YYYY-MM-DD format")
	}
	if strings.TrimSpace(in.SchoolName) == "" {
		v.Add("school_name", "is required")
	}
	if in.ContractorID == 0 {
		v.Add("contractor_id", "is required")
	}
	if in.StudentCount < 0 {
		v.Add("student_count", "must not be negative")
	}
	if in.MealsServed < 0 {
		v.Add("meals_served", "must not be negative")
	}
	if in.UnitPrice < 0 {
		v.Add("unit_price", "must not be negative")
	}

	return date, v.Err()
}

// Create records one day's meal counts. The total is computed server-side.
func (s *DailyService) Create(ctx context.Context, creatorID uint, input *DailyRecordInput) (*models.DailyMealRecord, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.contractorRepo.GetByID(ctx, input.ContractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	record := &models.DailyMealRecord{
		RecordDate:   date,
		SchoolName:   strings.TrimSpace(input.SchoolName),
		ContractorID: input.ContractorID,
		StudentCount: input.StudentCount,
		MealsServed:  input.MealsServed,
		UnitPrice:    input.UnitPrice,
		TotalAmount:  float64(input.MealsServed) * input.UnitPrice,
		CreatedBy:    creatorID,
	}

	if err := s.dailyRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update edits an existing record, recomputing the total.
func (s *DailyService) Update(ctx context.Context, id uint, input *DailyRecordInput) (*models.DailyMealRecord, error) {
	date, err := input.validate()
	if err != nil {
		return nil, err
	}

	record, err := s.dailyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	record.RecordDate = date
	record.SchoolName = strings.TrimSpace(input.SchoolName)
	record.ContractorID = input.ContractorID
	record.StudentCount = input.StudentCount
	record.MealsServed = input.MealsServed
	record.UnitPrice = input.UnitPrice
	record.TotalAmount = float64(input.MealsServed) * input.UnitPrice

	if err := s.dailyRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get fetches a daily record by ID
func (s *DailyService) Get(ctx context.Context, id uint) (*models.DailyMealRecord, error) {
	record, err := s.dailyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// List lists daily records in an optional date range
func (s *DailyService) List(ctx context.Context, from, to *time.Time, offset, limit int) ([]*models.DailyMealRecord, int64, error) {
	return s.dailyRepo.List(ctx, from, to, offset, limit)
}

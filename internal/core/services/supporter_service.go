package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/adapters/persistence/repositories"
	"snp-mealhub/internal/core/domain"
)

// SupporterService handles program supporter records
type SupporterService struct {
	supporterRepo repositories.SupporterRepository
}

// NewSupporterService creates a new supporter service
func NewSupporterService(supporterRepo repositories.SupporterRepository) *SupporterService {
	return &SupporterService{supporterRepo: supporterRepo}
}

// SupporterInput represents supporter form input
type SupporterInput struct {
	Name      string `json:"name"`
	NICNumber string `json:"nic_number"`
	Telephone string `json:"telephone"`
	Address   string `json:"address"`
	Remark    string `json:"remark"`
}

func (in *SupporterInput) validate() error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "is required")
	}
	if in.NICNumber != "" && !domain.ValidNIC(in.NICNumber) {
		v.Add("nic_number", "must be 9 digits followed by V/X, or 12 digits")
	}
	if !domain.ValidPhone(in.Telephone) {
		v.Add("telephone", "may only contain digits, spaces and + - ( )")
	}
	return v.Err()
}

func (in *SupporterInput) apply(sp *models.Supporter) {
	sp.Name = strings.TrimSpace(in.Name)
	sp.NICNumber = in.NICNumber
	sp.Telephone = strings.TrimSpace(in.Telephone)
	sp.Address = strings.TrimSpace(in.Address)
	sp.Remark = strings.TrimSpace(in.Remark)
}

// Create creates a supporter record
func (s *SupporterService) Create(ctx context.Context, input *SupporterInput) (*models.Supporter, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supporter := &models.Supporter{}
	input.apply(supporter)

	if err := s.supporterRepo.Create(ctx, supporter); err != nil {
		return nil, err
	}
	return supporter, nil
}

// Update edits a supporter record
func (s *SupporterService) Update(ctx context.Context, id uint, input *SupporterInput) (*models.Supporter, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	supporter, err := s.supporterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	input.apply(supporter)

	if err := s.supporterRepo.Update(ctx, supporter); err != nil {
		return nil, err
	}
	return supporter, nil
}

// Get fetches a supporter by ID
func (s *SupporterService) Get(ctx context.Context, id uint) (*models.Supporter, error) {
	supporter, err := s.supporterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return supporter, nil
}

// Delete removes a supporter record
func (s *SupporterService) Delete(ctx context.Context, id uint) error {
	if _, err := s.supporterRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.supporterRepo.Delete(ctx, id)
}

// List lists supporters with optional name search
func (s *SupporterService) List(ctx context.Context, search string, offset, limit int) ([]*models.Supporter, int64, error) {
	return s.supporterRepo.List(ctx, search, offset, limit)
}

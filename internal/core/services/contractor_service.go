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

// ContractorService handles contractor records
type ContractorService struct {
	contractorRepo repositories.ContractorRepository
}

// NewContractorService creates a new contractor service
func NewContractorService(contractorRepo repositories.ContractorRepository) *ContractorService {
	return &ContractorService{contractorRepo: contractorRepo}
}

// ContractorInput represents contractor form input
type ContractorInput struct {
	Name       string `json:"name"`
	NICNumber  string `json:"nic_number"`
	Telephone  string `json:"telephone"`
	Address    string `json:"address"`
	BankName   string `json:"bank_name"`
	BankBranch string `json:"bank_branch"`
	AccountNo  string `json:"account_no"`
	IsActive   bool   `json:"is_active"`
}

func (in *ContractorInput) validate() error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "is required")
	}
	if !domain.ValidNIC(in.NICNumber) {
		v.Add("nic_number", "must be 9 digits followed by V/X, or 12 digits")
	}
	if !domain.ValidPhone(in.Telephone) {
		v.Add("telephone", "may only contain digits, spaces and + - ( )")
	}
	return v.Err()
}

func (in *ContractorInput) apply(c *models.Contractor) {
	c.Name = strings.TrimSpace(in.Name)
	c.NICNumber = in.NICNumber
	c.Telephone = strings.TrimSpace(in.Telephone)
	c.Address = strings.TrimSpace(in.Address)
	c.BankName = strings.TrimSpace(in.BankName)
	c.BankBranch = strings.TrimSpace(in.BankBranch)
	c.AccountNo = strings.TrimSpace(in.AccountNo)
	c.IsActive = in.IsActive
}

// Create creates a contractor record
func (s *ContractorService) Create(ctx context.Context, input *ContractorInput) (*models.Contractor, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	contractor := &models.Contractor{}
	input.apply(contractor)

	if err := s.contractorRepo.Create(ctx, contractor); err != nil {
		return nil, err
	}
	return contractor, nil
}

// Update edits a contractor record
func (s *ContractorService) Update(ctx context.Context, id uint, input *ContractorInput) (*models.Contractor, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	contractor, err := s.contractorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	input.apply(contractor)

	if err := s.contractorRepo.Update(ctx, contractor); err != nil {
		return nil, err
	}
	return contractor, nil
}

// Get fetches a contractor by ID
func (s *ContractorService) Get(ctx context.Context, id uint) (*models.Contractor, error) {
	contractor, err := s.contractorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return contractor, nil
}

// Delete removes a contractor record
func (s *ContractorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.contractorRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.contractorRepo.Delete(ctx, id)
}

// List lists contractors with optional name search
func (s *ContractorService) List(ctx context.Context, search string, offset, limit int) ([]*models.Contractor, int64, error) {
	return s.contractorRepo.List(ctx, search, offset, limit)
}

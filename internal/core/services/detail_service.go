package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/adapters/persistence/repositories"
	"snp-mealhub/internal/core/domain"
)

// DetailService handles officer detail records (phase two of provisioning)
type DetailService struct {
	userRepo   repositories.UserRepository
	detailRepo repositories.DetailRepository
}

// NewDetailService creates a new detail service
func NewDetailService(userRepo repositories.UserRepository, detailRepo repositories.DetailRepository) *DetailService {
	return &DetailService{
		userRepo:   userRepo,
		detailRepo: detailRepo,
	}
}

// DetailInput represents officer detail form input
type DetailInput struct {
	FullName  string `json:"fullName"`
	NICNumber string `json:"nicNumber"`
	Telephone string `json:"telephone"`
	Address   string `json:"address"`
	IsActive  bool   `json:"isActive"`
}

func (in *DetailInput) validate() error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(in.FullName) == "" {
		v.Add("fullName", "is required")
	}
	if !domain.ValidNIC(in.NICNumber) {
		v.Add("nicNumber", "must be 9 digits followed by V/X, or 12 digits")
	}
	if !domain.ValidPhone(in.Telephone) {
		v.Add("telephone", "may only contain digits, spaces and + - ( )")
	}
	return v.Err()
}

// authorize permits the account owner and any admin.
func (s *DetailService) authorize(actorID uint, actorRole domain.Role, targetID uint) error {
	if actorRole == domain.RoleAdmin || actorID == targetID {
		return nil
	}
	return domain.ErrForbidden
}

// CreateDetail completes provisioning for an officer account. A second
// submission for the same account is rejected with ErrDetailExists; the
// update endpoint is the path for corrections.
func (s *DetailService) CreateDetail(ctx context.Context, actorID uint, actorRole domain.Role, targetID uint, role domain.Role, input *DetailInput) (*models.OfficerDetail, error) {
	if err := s.authorize(actorID, actorRole, targetID); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if user.CanonicalRole() != role {
		return nil, domain.ErrRoleMismatch
	}

	exists, err := s.detailRepo.ExistsByUserID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDetailExists
	}

	detail := &models.OfficerDetail{
		UserID:    targetID,
		Role:      string(role),
		FullName:  strings.TrimSpace(input.FullName),
		NICNumber: input.NICNumber,
		Telephone: strings.TrimSpace(input.Telephone),
		Address:   strings.TrimSpace(input.Address),
		IsActive:  input.IsActive,
	}

	if err := s.detailRepo.Create(ctx, detail); err != nil {
		return nil, err
	}

	logrus.Infof("✅ Officer details completed for %s (id=%d)", user.Username, user.ID)

	return detail, nil
}

// GetDetail fetches the detail record for an account (owner or admin).
func (s *DetailService) GetDetail(ctx context.Context, actorID uint, actorRole domain.Role, targetID uint) (*models.OfficerDetail, error) {
	if err := s.authorize(actorID, actorRole, targetID); err != nil {
		return nil, err
	}

	detail, err := s.detailRepo.GetByUserID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDetailNotFound
		}
		return nil, err
	}
	return detail, nil
}

// UpdateDetail edits an existing detail record (owner or admin).
func (s *DetailService) UpdateDetail(ctx context.Context, actorID uint, actorRole domain.Role, targetID uint, input *DetailInput) (*models.OfficerDetail, error) {
	if err := s.authorize(actorID, actorRole, targetID); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	detail, err := s.detailRepo.GetByUserID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDetailNotFound
		}
		return nil, err
	}

	detail.FullName = strings.TrimSpace(input.FullName)
	detail.NICNumber = input.NICNumber
	detail.Telephone = strings.TrimSpace(input.Telephone)
	detail.Address = strings.TrimSpace(input.Address)
	detail.IsActive = input.IsActive

	if err := s.detailRepo.Update(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

// GetActiveDetail returns the details of the officer currently on duty for a
// role. This drives the name auto-populated on vouchers.
func (s *DetailService) GetActiveDetail(ctx context.Context, role domain.Role) (*models.OfficerDetail, error) {
	if !role.IsOfficer() {
		return nil, domain.ErrInvalidRole
	}

	detail, err := s.detailRepo.GetActiveByRole(ctx, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDetailNotFound
		}
		return nil, err
	}
	return detail, nil
}

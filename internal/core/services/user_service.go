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
	"snp-mealhub/internal/pkg/password"
)

// UserService handles user management business logic (admin surface)
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersOutput represents list users output
type ListUsersOutput struct {
	Users []*models.UserResponse `json:"users"`
	Total int64                  `json:"total"`
}

// UpdateUserInput represents an admin edit of an account. Nil fields are
// left unchanged; a blank password is treated as "keep the current hash".
type UpdateUserInput struct {
	Username        *string `json:"username"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
	Role            *string `json:"role"`
	IsActive        *bool   `json:"is_active"`
}

// ListUsers lists all users with pagination
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) (*ListUsersOutput, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}

	return &ListUsersOutput{Users: responses, Total: total}, nil
}

// GetUser gets a user by ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateUser applies an admin edit. All validation happens before any write:
// a password/confirmation mismatch or a bad field leaves the stored record
// untouched. Edits that leave the account as an active officer, whether by
// activation or a role change, re-check the single-active-officer rule under
// the transactional guard.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != user.Username {
			if !domain.ValidUsername(username) {
				v := &domain.ValidationError{}
				v.Add("username", "must be 3-50 characters of letters, digits and underscores")
				return nil, v
			}
			exists, err := s.userRepo.ExistsByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateUsername
			}
			user.Username = username
		}
	}

	// Blank password means unchanged. A provided password must match its
	// confirmation before anything is persisted.
	if input.Password != nil && *input.Password != "" {
		confirm := ""
		if input.ConfirmPassword != nil {
			confirm = *input.ConfirmPassword
		}
		if *input.Password != confirm {
			return nil, domain.ErrPasswordMismatch
		}
		if !domain.ValidPassword(*input.Password) {
			v := &domain.ValidationError{}
			v.Add("password", "too short")
			return nil, v
		}
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	wasRole := user.CanonicalRole()
	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		user.Role = string(role)
	}

	wasActive := user.IsActive
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	// The single-active-officer rule must be re-checked whenever the edit
	// leaves an active officer account that wasn't one before: a fresh
	// activation, or a role change on an already-active account.
	guarded := user.IsActive && user.CanonicalRole().IsOfficer() &&
		(!wasActive || user.CanonicalRole() != wasRole)
	if guarded {
		conflict, err := s.userRepo.SaveOfficerExclusive(ctx, user)
		if errors.Is(err, domain.ErrActiveOfficerExists) {
			return nil, &domain.ActiveOfficerConflictError{
				Role:     user.CanonicalRole(),
				UserID:   conflict.ID,
				Username: conflict.Username,
			}
		}
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	logrus.Infof("✅ Account updated: %s (id=%d)", user.Username, user.ID)

	return user.ToResponse(), nil
}

// ListPendingDetails lists officer accounts whose detail record has never
// been submitted, so abandoned provisioning attempts stay visible.
func (s *UserService) ListPendingDetails(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListPendingDetails(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

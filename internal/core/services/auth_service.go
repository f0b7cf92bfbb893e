package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/adapters/persistence/repositories"
	"snp-mealhub/internal/config"
	"snp-mealhub/internal/core/domain"
	"snp-mealhub/internal/pkg/jwt"
	"snp-mealhub/internal/pkg/password"
)

// AuthService handles authentication and account provisioning
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  *models.UserResponse `json:"user"`
	Token string               `json:"token"`
}

// RegisterInput represents account creation input (phase one of
// provisioning)
type RegisterInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	IsActive        bool   `json:"is_active"`
}

// RegisterResult represents the provisioning phase-one outcome. Officer
// accounts carry a token scoped to the new account plus the flag telling the
// caller that the detail form must follow.
type RegisterResult struct {
	User                      *models.UserResponse `json:"user"`
	Token                     string               `json:"token,omitempty"`
	RequiresAdditionalDetails bool                 `json:"requiresAdditionalDetails"`
}

// Login authenticates a user. Unknown username and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive && user.CanonicalRole() != domain.RoleAdmin {
		return nil, domain.ErrUserInactive
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	logrus.Infof("✅ User logged in: %s", user.Username)

	return &AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}, nil
}

// Register creates a new account (admin operation). For officer roles that
// request the active flag, the existence of another active officer of the
// same role pauses the workflow with an ActiveOfficerConflictError naming
// the conflicting account; nothing is written in that case.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*RegisterResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	v := &domain.ValidationError{}
	if !domain.ValidUsername(input.Username) {
		v.Add("username", "must be 3-50 characters of letters, digits and underscores")
	}
	if !domain.ValidPassword(input.Password) {
		v.Add("password", "too short")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUsername
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Password: hashed,
		Role:     string(role),
		IsActive: input.IsActive,
	}

	if role.IsOfficer() && input.IsActive {
		conflict, err := s.userRepo.CreateOfficerExclusive(ctx, user)
		if errors.Is(err, domain.ErrActiveOfficerExists) {
			return nil, &domain.ActiveOfficerConflictError{
				Role:     role,
				UserID:   conflict.ID,
				Username: conflict.Username,
			}
		}
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	result := &RegisterResult{
		User:                      user.ToResponse(),
		RequiresAdditionalDetails: role.IsOfficer(),
	}

	// Officer accounts get a token bound to the new account so the caller
	// can submit the detail form as that account.
	if role.IsOfficer() {
		token, err := s.issueToken(user)
		if err != nil {
			return nil, err
		}
		result.Token = token
	}

	logrus.Infof("✅ Account created: %s (role=%s, active=%t)", user.Username, user.Role, user.IsActive)

	return result, nil
}

// ResetPasswordInput represents password reset input
type ResetPasswordInput struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword changes a password after verifying the old one.
func (s *AuthService) ResetPassword(ctx context.Context, input *ResetPasswordInput) error {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return domain.ErrInvalidCredentials
	}

	if !domain.ValidPassword(input.NewPassword) {
		v := &domain.ValidationError{}
		v.Add("newPassword", "too short")
		return v
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	logrus.Infof("✅ Password reset for user: %s", user.Username)
	return nil
}

// ValidateToken validates a bearer token
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.Validate(token, s.cfg.JWT.Secret)
}

// issueToken issues a bearer token bound to the account id and role
func (s *AuthService) issueToken(user *models.User) (string, error) {
	return jwt.Generate(user.ID, user.Username, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.TokenTTLHours)
}

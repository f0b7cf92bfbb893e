package repositories

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/core/domain"
)

// translateDuplicate maps the MySQL duplicate-entry error to the domain
// sentinel. The users table has a single unique index (username), so 1062
// on a user write always means the name is taken. Services pre-check with
// ExistsByUsername, but two concurrent writes can both pass that check and
// race to the index.
func translateDuplicate(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return domain.ErrDuplicateUsername
	}
	return err
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(user).Error)
}

// CreateOfficerExclusive inserts an active officer account. The lookup for a
// conflicting active officer takes a row lock, so two concurrent provisioning
// attempts for the same role cannot both pass the check.
func (r *userRepository) CreateOfficerExclusive(ctx context.Context, user *models.User) (*models.User, error) {
	var conflict models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("role = ? AND is_active = ?", user.Role, true).
			First(&conflict).Error
		if err == nil {
			return domain.ErrActiveOfficerExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return translateDuplicate(tx.Create(user).Error)
	})
	if errors.Is(err, domain.ErrActiveOfficerExists) {
		return &conflict, err
	}
	return nil, err
}

// SaveOfficerExclusive saves an officer account being activated, under the
// same row-locked conflict check as CreateOfficerExclusive. A different
// account of the same role holding the active flag aborts the write.
func (r *userRepository) SaveOfficerExclusive(ctx context.Context, user *models.User) (*models.User, error) {
	var conflict models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("role = ? AND is_active = ? AND id <> ?", user.Role, true, user.ID).
			First(&conflict).Error
		if err == nil {
			return domain.ErrActiveOfficerExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return translateDuplicate(tx.Save(user).Error)
	})
	if errors.Is(err, domain.ErrActiveOfficerExists) {
		return &conflict, err
	}
	return nil, err
}

// GetByID gets a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername gets a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveByRole gets the active officer account for a role
func (r *userRepository) GetActiveByRole(ctx context.Context, role domain.Role) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", string(role), true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return translateDuplicate(r.db.WithContext(ctx).Save(user).Error)
}

// List lists users with pagination
func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id").Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListPendingDetails lists officer accounts with no officer_details row
func (r *userRepository) ListPendingDetails(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("role IN ?", []string{string(domain.RoleDataEntry), string(domain.RoleVerification)}).
		Where("id NOT IN (?)", r.db.Model(&models.OfficerDetail{}).Select("user_id")).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByUsername checks if username exists
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

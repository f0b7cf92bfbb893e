package repositories

import (
	"context"
	"time"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	// CreateOfficerExclusive inserts an officer account that requests the
	// active flag. The check for another active officer of the same role and
	// the insert run in one transaction; on conflict the existing account is
	// returned together with domain.ErrActiveOfficerExists and nothing is
	// written.
	CreateOfficerExclusive(ctx context.Context, user *models.User) (*models.User, error)
	// SaveOfficerExclusive persists an update that (re)activates an officer
	// account under the same transactional guard as CreateOfficerExclusive.
	SaveOfficerExclusive(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetActiveByRole(ctx context.Context, role domain.Role) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	// ListPendingDetails returns officer accounts that have no officer-detail
	// row yet (stuck between the two provisioning phases).
	ListPendingDetails(ctx context.Context) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// DetailRepository defines officer detail repository interface
type DetailRepository interface {
	Create(ctx context.Context, detail *models.OfficerDetail) error
	GetByUserID(ctx context.Context, userID uint) (*models.OfficerDetail, error)
	GetActiveByRole(ctx context.Context, role domain.Role) (*models.OfficerDetail, error)
	Update(ctx context.Context, detail *models.OfficerDetail) error
	ExistsByUserID(ctx context.Context, userID uint) (bool, error)
}

// ContractorRepository defines contractor repository interface
type ContractorRepository interface {
	Create(ctx context.Context, contractor *models.Contractor) error
	GetByID(ctx context.Context, id uint) (*models.Contractor, error)
	Update(ctx context.Context, contractor *models.Contractor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, search string, offset, limit int) ([]*models.Contractor, int64, error)
}

// SupporterRepository defines supporter repository interface
type SupporterRepository interface {
	Create(ctx context.Context, supporter *models.Supporter) error
	GetByID(ctx context.Context, id uint) (*models.Supporter, error)
	Update(ctx context.Context, supporter *models.Supporter) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, search string, offset, limit int) ([]*models.Supporter, int64, error)
}

// DailyRecordRepository defines daily meal record repository interface
type DailyRecordRepository interface {
	Create(ctx context.Context, record *models.DailyMealRecord) error
	GetByID(ctx context.Context, id uint) (*models.DailyMealRecord, error)
	Update(ctx context.Context, record *models.DailyMealRecord) error
	List(ctx context.Context, from, to *time.Time, offset, limit int) ([]*models.DailyMealRecord, int64, error)
	SumAmountByPeriod(ctx context.Context, contractorID uint, from, to time.Time) (float64, error)
}

// VoucherRepository defines voucher repository interface
type VoucherRepository interface {
	Create(ctx context.Context, voucher *models.Voucher) error
	GetByID(ctx context.Context, id uint) (*models.Voucher, error)
	Update(ctx context.Context, voucher *models.Voucher) error
	List(ctx context.Context, status string, offset, limit int) ([]*models.Voucher, int64, error)
}

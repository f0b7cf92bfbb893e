package models

import (
	"time"

	"gorm.io/gorm"

	"snp-mealhub/internal/core/domain"
)

// ============================================================
// Accounts & Officer Details
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:10;not null;index:idx_role_active" json:"role"`
	IsActive  bool           `gorm:"default:false;index:idx_role_active" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Role returns the canonical role of the account.
func (u *User) CanonicalRole() domain.Role {
	return domain.Role(u.Role)
}

// OfficerDetail represents officer_details table. One row per officer
// account; deo and vo accounts are incomplete until this row exists.
type OfficerDetail struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Role      string         `gorm:"size:10;not null" json:"role"`
	FullName  string         `gorm:"size:100;not null" json:"full_name"`
	NICNumber string         `gorm:"size:20;not null" json:"nic_number"`
	Telephone string         `gorm:"size:20" json:"telephone"`
	Address   string         `gorm:"type:text" json:"address"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (OfficerDetail) TableName() string {
	return "officer_details"
}

// ============================================================
// Program Records
// ============================================================

// Contractor represents contractors table (meal suppliers under contract)
type Contractor struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	NICNumber   string         `gorm:"size:20;not null" json:"nic_number"`
	Telephone   string         `gorm:"size:20" json:"telephone"`
	Address     string         `gorm:"type:text" json:"address"`
	BankName    string         `gorm:"size:100" json:"bank_name"`
	BankBranch  string         `gorm:"size:100" json:"bank_branch"`
	AccountNo   string         `gorm:"size:30" json:"account_no"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Contractor) TableName() string {
	return "contractors"
}

// Supporter represents supporters table (program patrons/donors)
type Supporter struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	NICNumber string         `gorm:"size:20" json:"nic_number"`
	Telephone string         `gorm:"size:20" json:"telephone"`
	Address   string         `gorm:"type:text" json:"address"`
	Remark    string         `gorm:"type:text" json:"remark"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Supporter) TableName() string {
	return "supporters"
}

// DailyMealRecord represents daily_meal_records table (per-day meal counts)
type DailyMealRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	RecordDate   time.Time      `gorm:"type:date;not null;index" json:"record_date"`
	SchoolName   string         `gorm:"size:150;not null" json:"school_name"`
	ContractorID uint           `gorm:"not null;index" json:"contractor_id"`
	StudentCount int            `gorm:"not null" json:"student_count"`
	MealsServed  int            `gorm:"not null" json:"meals_served"`
	UnitPrice    float64        `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalAmount  float64        `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CreatedBy    uint           `gorm:"not null" json:"created_by"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Contractor *Contractor `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	Creator    *User       `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (DailyMealRecord) TableName() string {
	return "daily_meal_records"
}

// Voucher statuses
const (
	VoucherPending  = "pending"
	VoucherApproved = "approved"
	VoucherRejected = "rejected"
)

// Voucher represents vouchers table. Payment authorizations issued by the
// data-entry officer and decided by the verification officer. Officer names
// are snapshotted at issue time so past vouchers keep the names they were
// printed with.
type Voucher struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	VoucherNo    string         `gorm:"uniqueIndex;size:40;not null" json:"voucher_no"`
	Period       string         `gorm:"size:20;not null" json:"period"`
	ContractorID uint           `gorm:"not null;index" json:"contractor_id"`
	Amount       float64        `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status       string         `gorm:"size:10;not null;default:'pending';index" json:"status"`
	DEOName      string         `gorm:"size:100" json:"deo_name"`
	VOName       string         `gorm:"size:100" json:"vo_name"`
	IssuedBy     uint           `gorm:"not null" json:"issued_by"`
	DecidedBy    *uint          `json:"decided_by"`
	DecidedAt    *time.Time     `json:"decided_at"`
	Remark       string         `gorm:"type:text" json:"remark"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Contractor *Contractor `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	Issuer     *User       `gorm:"foreignKey:IssuedBy" json:"issuer,omitempty"`
	Decider    *User       `gorm:"foreignKey:DecidedBy" json:"decider,omitempty"`
}

func (Voucher) TableName() string {
	return "vouchers"
}

// IsDecided reports whether the voucher already carries a final decision.
func (v *Voucher) IsDecided() bool {
	return v.Status != VoucherPending
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&OfficerDetail{},
		&Contractor{},
		&Supporter{},
		&DailyMealRecord{},
		&Voucher{},
	)
}

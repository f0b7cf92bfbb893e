package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/core/domain"
	"snp-mealhub/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Each seeder is idempotent: populated tables are
// left untouched.
func (s *Seeder) Run() error {
	logrus.Info("🌱 Running database seeders...")

	if err := s.seedDefaultAccounts(); err != nil {
		return err
	}
	if err := s.seedContractors(); err != nil {
		return err
	}
	if err := s.seedSupporters(); err != nil {
		return err
	}
	if err := s.seedDailyRecords(); err != nil {
		return err
	}

	logrus.Info("✅ Database seeding completed")
	return nil
}

// seedDefaultAccounts seeds the default admin and officer accounts with
// their detail records. Development/testing only; production accounts go
// through the provisioning workflow.
func (s *Seeder) seedDefaultAccounts() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	accounts := []struct {
		username string
		pass     string
		role     domain.Role
		fullName string
		nic      string
	}{
		{"admin", "admin123", domain.RoleAdmin, "", ""},
		{"deo", "deo123", domain.RoleDataEntry, "Default Data Entry Officer", "199012345678"},
		{"vo", "vo123", domain.RoleVerification, "Default Verification Officer", "198754321098"},
	}

	for _, a := range accounts {
		hashed, err := password.Hash(a.pass)
		if err != nil {
			return err
		}

		user := &models.User{
			Username: a.username,
			Password: hashed,
			Role:     string(a.role),
			IsActive: true,
		}
		if err := s.db.Create(user).Error; err != nil {
			return err
		}

		if a.role.IsOfficer() {
			detail := &models.OfficerDetail{
				UserID:    user.ID,
				Role:      string(a.role),
				FullName:  a.fullName,
				NICNumber: a.nic,
				IsActive:  true,
			}
			if err := s.db.Create(detail).Error; err != nil {
				return err
			}
		}

		logrus.Infof("✅ Default account created: %s (%s)", user.Username, user.Role)
	}

	return nil
}

// seedContractors seeds sample meal contractors
func (s *Seeder) seedContractors() error {
	var count int64
	s.db.Model(&models.Contractor{}).Count(&count)
	if count > 0 {
		return nil
	}

	contractors := []models.Contractor{
		{
			Name:       "W.M. Sirisena Catering",
			NICNumber:  "196534567890",
			Telephone:  "+94 71 234 5678",
			Address:    "No. 42, Temple Road, Kurunegala",
			BankName:   "Bank of Ceylon",
			BankBranch: "Kurunegala",
			AccountNo:  "0071234567",
			IsActive:   true,
		},
		{
			Name:       "Jayanthi Meal Suppliers",
			NICNumber:  "725643210V",
			Telephone:  "+94 77 887 1122",
			Address:    "15/3, Lake View, Kandy",
			BankName:   "People's Bank",
			BankBranch: "Kandy City",
			AccountNo:  "2009876543",
			IsActive:   true,
		},
	}

	for i := range contractors {
		if err := s.db.Create(&contractors[i]).Error; err != nil {
			return err
		}
	}

	logrus.Infof("✅ %d sample contractors created", len(contractors))
	return nil
}

// seedSupporters seeds sample program supporters
func (s *Seeder) seedSupporters() error {
	var count int64
	s.db.Model(&models.Supporter{}).Count(&count)
	if count > 0 {
		return nil
	}

	supporters := []models.Supporter{
		{
			Name:      "Sunrise Community Trust",
			Telephone: "011 2456789",
			Address:   "88, Galle Road, Colombo 03",
			Remark:    "Monthly dry ration donations",
		},
	}

	for i := range supporters {
		if err := s.db.Create(&supporters[i]).Error; err != nil {
			return err
		}
	}

	logrus.Infof("✅ %d sample supporters created", len(supporters))
	return nil
}

// seedDailyRecords seeds a few sample meal-count rows against the first
// contractor
func (s *Seeder) seedDailyRecords() error {
	var count int64
	s.db.Model(&models.DailyMealRecord{}).Count(&count)
	if count > 0 {
		return nil
	}

	var contractor models.Contractor
	if err := s.db.First(&contractor).Error; err != nil {
		return err
	}
	var deo models.User
	if err := s.db.Where("role = ?", string(domain.RoleDataEntry)).First(&deo).Error; err != nil {
		return err
	}

	base := time.Now().AddDate(0, 0, -3)
	for i := 0; i < 3; i++ {
		record := &models.DailyMealRecord{
			RecordDate:   base.AddDate(0, 0, i),
			SchoolName:   "Mahawewa Primary School",
			ContractorID: contractor.ID,
			StudentCount: 240,
			MealsServed:  228 + i,
			UnitPrice:    85.00,
			TotalAmount:  float64(228+i) * 85.00,
			CreatedBy:    deo.ID,
		}
		if err := s.db.Create(record).Error; err != nil {
			return err
		}
	}

	logrus.Info("✅ Sample daily meal records created")
	return nil
}

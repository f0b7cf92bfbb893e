package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/core/domain"
)

// In-memory repository fakes backing the service tests. They mirror the
// gorm implementations' contract, including gorm.ErrRecordNotFound on
// missing rows and the exclusive-officer guard.

type fakeUserRepo struct {
	users   map[uint]*models.User
	details *fakeDetailRepo // set by newFakeDetailRepo
	nextID  uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	} else if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	cp := *user
	r.users[user.ID] = &cp
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.add(user)
	return nil
}

func (r *fakeUserRepo) activeOfficer(role string, excludeID uint) *models.User {
	for _, u := range r.users {
		if u.Role == role && u.IsActive && u.ID != excludeID {
			return u
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateOfficerExclusive(_ context.Context, user *models.User) (*models.User, error) {
	if conflict := r.activeOfficer(user.Role, 0); conflict != nil {
		return conflict, domain.ErrActiveOfficerExists
	}
	r.add(user)
	return nil, nil
}

func (r *fakeUserRepo) SaveOfficerExclusive(_ context.Context, user *models.User) (*models.User, error) {
	if conflict := r.activeOfficer(user.Role, user.ID); conflict != nil {
		return conflict, domain.ErrActiveOfficerExists
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetActiveByRole(_ context.Context, role domain.Role) (*models.User, error) {
	if u := r.activeOfficer(string(role), 0); u != nil {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	var all []*models.User
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			cp := *u
			all = append(all, &cp)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeUserRepo) ListPendingDetails(_ context.Context) ([]*models.User, error) {
	var pending []*models.User
	for id := uint(1); id < r.nextID; id++ {
		u, ok := r.users[id]
		if !ok || !u.CanonicalRole().IsOfficer() {
			continue
		}
		if r.details != nil {
			if _, submitted := r.details.details[id]; submitted {
				continue
			}
		}
		cp := *u
		pending = append(pending, &cp)
	}
	return pending, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(context.Background(), username)
	return err == nil, nil
}

type fakeDetailRepo struct {
	details map[uint]*models.OfficerDetail // keyed by UserID
	users   *fakeUserRepo
	nextID  uint
}

func newFakeDetailRepo(users *fakeUserRepo) *fakeDetailRepo {
	r := &fakeDetailRepo{details: map[uint]*models.OfficerDetail{}, users: users, nextID: 1}
	users.details = r
	return r
}

func (r *fakeDetailRepo) Create(_ context.Context, detail *models.OfficerDetail) error {
	detail.ID = r.nextID
	r.nextID++
	cp := *detail
	r.details[detail.UserID] = &cp
	return nil
}

func (r *fakeDetailRepo) GetByUserID(_ context.Context, userID uint) (*models.OfficerDetail, error) {
	d, ok := r.details[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDetailRepo) GetActiveByRole(_ context.Context, role domain.Role) (*models.OfficerDetail, error) {
	for userID, d := range r.details {
		u, ok := r.users.users[userID]
		if ok && u.Role == string(role) && u.IsActive {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDetailRepo) Update(_ context.Context, detail *models.OfficerDetail) error {
	if _, ok := r.details[detail.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *detail
	r.details[detail.UserID] = &cp
	return nil
}

func (r *fakeDetailRepo) ExistsByUserID(_ context.Context, userID uint) (bool, error) {
	_, ok := r.details[userID]
	return ok, nil
}

type fakeContractorRepo struct {
	contractors map[uint]*models.Contractor
	nextID      uint
}

func newFakeContractorRepo() *fakeContractorRepo {
	return &fakeContractorRepo{contractors: map[uint]*models.Contractor{}, nextID: 1}
}

func (r *fakeContractorRepo) Create(_ context.Context, c *models.Contractor) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.contractors[c.ID] = &cp
	return nil
}

func (r *fakeContractorRepo) GetByID(_ context.Context, id uint) (*models.Contractor, error) {
	c, ok := r.contractors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractorRepo) Update(_ context.Context, c *models.Contractor) error {
	if _, ok := r.contractors[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	r.contractors[c.ID] = &cp
	return nil
}

func (r *fakeContractorRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.contractors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.contractors, id)
	return nil
}

func (r *fakeContractorRepo) List(_ context.Context, search string, offset, limit int) ([]*models.Contractor, int64, error) {
	var all []*models.Contractor
	for id := uint(1); id < r.nextID; id++ {
		c, ok := r.contractors[id]
		if !ok {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		cp := *c
		all = append(all, &cp)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type fakeDailyRepo struct {
	records map[uint]*models.DailyMealRecord
	nextID  uint
}

func newFakeDailyRepo() *fakeDailyRepo {
	return &fakeDailyRepo{records: map[uint]*models.DailyMealRecord{}, nextID: 1}
}

func (r *fakeDailyRepo) Create(_ context.Context, rec *models.DailyMealRecord) error {
	rec.ID = r.nextID
	r.nextID++
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *fakeDailyRepo) GetByID(_ context.Context, id uint) (*models.DailyMealRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeDailyRepo) Update(_ context.Context, rec *models.DailyMealRecord) error {
	if _, ok := r.records[rec.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *fakeDailyRepo) List(_ context.Context, from, to *time.Time, offset, limit int) ([]*models.DailyMealRecord, int64, error) {
	var all []*models.DailyMealRecord
	for id := uint(1); id < r.nextID; id++ {
		rec, ok := r.records[id]
		if !ok {
			continue
		}
		if from != nil && rec.RecordDate.Before(*from) {
			continue
		}
		if to != nil && rec.RecordDate.After(*to) {
			continue
		}
		cp := *rec
		all = append(all, &cp)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeDailyRepo) SumAmountByPeriod(_ context.Context, contractorID uint, from, to time.Time) (float64, error) {
	var sum float64
	for _, rec := range r.records {
		if rec.ContractorID != contractorID {
			continue
		}
		if rec.RecordDate.Before(from) || rec.RecordDate.After(to) {
			continue
		}
		sum += rec.TotalAmount
	}
	return sum, nil
}

type fakeVoucherRepo struct {
	vouchers map[uint]*models.Voucher
	nextID   uint
}

func newFakeVoucherRepo() *fakeVoucherRepo {
	return &fakeVoucherRepo{vouchers: map[uint]*models.Voucher{}, nextID: 1}
}

func (r *fakeVoucherRepo) Create(_ context.Context, v *models.Voucher) error {
	v.ID = r.nextID
	r.nextID++
	cp := *v
	r.vouchers[v.ID] = &cp
	return nil
}

func (r *fakeVoucherRepo) GetByID(_ context.Context, id uint) (*models.Voucher, error) {
	v, ok := r.vouchers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVoucherRepo) Update(_ context.Context, v *models.Voucher) error {
	if _, ok := r.vouchers[v.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *v
	r.vouchers[v.ID] = &cp
	return nil
}

func (r *fakeVoucherRepo) List(_ context.Context, status string, offset, limit int) ([]*models.Voucher, int64, error) {
	var all []*models.Voucher
	for id := uint(1); id < r.nextID; id++ {
		v, ok := r.vouchers[id]
		if !ok {
			continue
		}
		if status != "" && v.Status != status {
			continue
		}
		cp := *v
		all = append(all, &cp)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

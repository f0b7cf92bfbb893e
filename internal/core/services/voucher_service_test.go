package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snp-mealhub/internal/adapters/persistence/models"
	"snp-mealhub/internal/core/domain"
)

type voucherFixture struct {
	users       *fakeUserRepo
	details     *fakeDetailRepo
	contractors *fakeContractorRepo
	daily       *fakeDailyRepo
	vouchers    *fakeVoucherRepo
	svc         *VoucherService
	contractor  *models.Contractor
}

func newVoucherFixture(t *testing.T) *voucherFixture {
	t.Helper()
	f := &voucherFixture{
		users:       newFakeUserRepo(),
		contractors: newFakeContractorRepo(),
		daily:       newFakeDailyRepo(),
		vouchers:    newFakeVoucherRepo(),
	}
	f.details = newFakeDetailRepo(f.users)
	f.svc = NewVoucherService(f.vouchers, f.contractors, f.details, f.daily)

	f.contractor = &models.Contractor{Name: "Lanka Catering Services", NICNumber: "751234567V", IsActive: true}
	require.NoError(t, f.contractors.Create(context.Background(), f.contractor))
	return f
}

func (f *voucherFixture) addDailyRecord(t *testing.T, date string, amount float64) {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	require.NoError(t, f.daily.Create(context.Background(), &models.DailyMealRecord{
		RecordDate:   d,
		SchoolName:   "Central College",
		ContractorID: f.contractor.ID,
		TotalAmount:  amount,
	}))
}

func TestIssueVoucher(t *testing.T) {
	f := newVoucherFixture(t)

	voucher, err := f.svc.Issue(context.Background(), 7, &IssueVoucherInput{
		Period:       "2026-08",
		ContractorID: f.contractor.ID,
		Amount:       15000,
		Remark:       "August meals",
	})
	require.NoError(t, err)

	assert.Equal(t, models.VoucherPending, voucher.Status)
	assert.Equal(t, uint(7), voucher.IssuedBy)
	assert.Equal(t, 15000.0, voucher.Amount)
	assert.Regexp(t, `^V-2026-08-[0-9A-F]{8}$`, voucher.VoucherNo)
	assert.False(t, voucher.IsDecided())
}

func TestIssueVoucherAmountFromDailyRecords(t *testing.T) {
	f := newVoucherFixture(t)
	f.addDailyRecord(t, "2026-08-03", 1200)
	f.addDailyRecord(t, "2026-08-04", 800)
	f.addDailyRecord(t, "2026-07-31", 999) // outside the period

	voucher, err := f.svc.Issue(context.Background(), 7, &IssueVoucherInput{
		Period:       "2026-08",
		ContractorID: f.contractor.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, voucher.Amount)
}

func TestIssueVoucherSnapshotsOfficerNames(t *testing.T) {
	f := newVoucherFixture(t)

	deo := seedUser(t, f.users, "deo0", "deo123", "deo", true)
	require.NoError(t, f.details.Create(context.Background(), &models.OfficerDetail{
		UserID: deo.ID, Role: "deo", FullName: "K. A. Perera", IsActive: true,
	}))

	voucher, err := f.svc.Issue(context.Background(), deo.ID, &IssueVoucherInput{
		Period:       "2026-08",
		ContractorID: f.contractor.ID,
		Amount:       5000,
	})
	require.NoError(t, err)
	assert.Equal(t, "K. A. Perera", voucher.DEOName)
	assert.Empty(t, voucher.VOName, "missing active verification officer leaves the field blank")
}

func TestIssueVoucherValidation(t *testing.T) {
	f := newVoucherFixture(t)

	_, err := f.svc.Issue(context.Background(), 7, &IssueVoucherInput{
		Period:       "August 2026",
		ContractorID: f.contractor.ID,
	})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "period", vErr.Fields[0].Field)

	_, err = f.svc.Issue(context.Background(), 7, &IssueVoucherInput{
		Period:       "2026-08",
		ContractorID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecideVoucher(t *testing.T) {
	f := newVoucherFixture(t)

	issued, err := f.svc.Issue(context.Background(), 7, &IssueVoucherInput{
		Period: "2026-08", ContractorID: f.contractor.ID, Amount: 5000,
	})
	require.NoError(t, err)

	decided, err := f.svc.Decide(context.Background(), 9, issued.ID, true, "checked against records")
	require.NoError(t, err)
	assert.Equal(t, models.VoucherApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, uint(9), *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)
	assert.Equal(t, "checked against records", decided.Remark)
}

func TestDecideVoucherOnlyOnce(t *testing.T) {
	f := newVoucherFixture(t)

	issued, err := f.svc.Issue(context.Background(), 7, &IssueVoucherInput{
		Period: "2026-08", ContractorID: f.contractor.ID, Amount: 5000,
	})
	require.NoError(t, err)

	_, err = f.svc.Decide(context.Background(), 9, issued.ID, false, "unit price wrong")
	require.NoError(t, err)

	// Second decision, either direction, is rejected.
	_, err = f.svc.Decide(context.Background(), 9, issued.ID, true, "")
	assert.ErrorIs(t, err, domain.ErrVoucherDecided)

	stored, err := f.svc.Get(context.Background(), issued.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VoucherRejected, stored.Status)
}

func TestDecideVoucherNotFound(t *testing.T) {
	f := newVoucherFixture(t)

	_, err := f.svc.Decide(context.Background(), 9, 42, true, "")
	assert.ErrorIs(t, err, domain.ErrVoucherNotFound)
}

func TestListVouchersByStatus(t *testing.T) {
	f := newVoucherFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Issue(context.Background(), 7, &IssueVoucherInput{
			Period: "2026-08", ContractorID: f.contractor.ID, Amount: 1000,
		})
		require.NoError(t, err)
	}
	_, err := f.svc.Decide(context.Background(), 9, 1, true, "")
	require.NoError(t, err)

	pending, total, err := f.svc.List(context.Background(), models.VoucherPending, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, pending, 2)

	all, total, err := f.svc.List(context.Background(), "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

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

func validDailyInput(contractorID uint) *DailyRecordInput {
	return &DailyRecordInput{
		RecordDate:   "2026-08-24",
		SchoolName:   "Central College",
		ContractorID: contractorID,
		StudentCount: 120,
		MealsServed:  115,
		UnitPrice:    85.50,
	}
}

func TestCreateDailyRecord(t *testing.T) {
	contractors := newFakeContractorRepo()
	contractor := &models.Contractor{Name: "Lanka Catering Services", NICNumber: "751234567V"}
	require.NoError(t, contractors.Create(context.Background(), contractor))
	svc := NewDailyService(newFakeDailyRepo(), contractors)

	record, err := svc.Create(context.Background(), 7, validDailyInput(contractor.ID))
	require.NoError(t, err)

	assert.Equal(t, uint(7), record.CreatedBy)
	assert.Equal(t, 115, record.MealsServed)
	assert.InDelta(t, 115*85.50, record.TotalAmount, 0.001, "total is computed server-side")
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), record.RecordDate)
}

func TestCreateDailyRecordValidation(t *testing.T) {
	contractors := newFakeContractorRepo()
	contractor := &models.Contractor{Name: "Lanka Catering Services", NICNumber: "751234567V"}
	require.NoError(t, contractors.Create(context.Background(), contractor))
	svc := NewDailyService(newFakeDailyRepo(), contractors)

	tests := []struct {
		name      string
		mutate    func(*DailyRecordInput)
		wantField string
	}{
		{"bad date", func(in *DailyRecordInput) { in.RecordDate = "24/08/2026" }, "record_date"},
		{"blank school", func(in *DailyRecordInput) { in.SchoolName = " " }, "school_name"},
		{"missing contractor", func(in *DailyRecordInput) { in.ContractorID = 0 }, "contractor_id"},
		{"negative students", func(in *DailyRecordInput) { in.StudentCount = -1 }, "student_count"},
		{"negative meals", func(in *DailyRecordInput) { in.MealsServed = -5 }, "meals_served"},
		{"negative price", func(in *DailyRecordInput) { in.UnitPrice = -1 }, "unit_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validDailyInput(contractor.ID)
			tt.mutate(in)

			_, err := svc.Create(context.Background(), 7, in)
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
		})
	}

	t.Run("unknown contractor", func(t *testing.T) {
		_, err := svc.Create(context.Background(), 7, validDailyInput(99))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdateDailyRecordRecomputesTotal(t *testing.T) {
	contractors := newFakeContractorRepo()
	contractor := &models.Contractor{Name: "Lanka Catering Services", NICNumber: "751234567V"}
	require.NoError(t, contractors.Create(context.Background(), contractor))
	svc := NewDailyService(newFakeDailyRepo(), contractors)

	record, err := svc.Create(context.Background(), 7, validDailyInput(contractor.ID))
	require.NoError(t, err)

	in := validDailyInput(contractor.ID)
	in.MealsServed = 100
	in.UnitPrice = 90

	updated, err := svc.Update(context.Background(), record.ID, in)
	require.NoError(t, err)
	assert.InDelta(t, 9000.0, updated.TotalAmount, 0.001)
}

func TestListDailyRecordsByDateRange(t *testing.T) {
	contractors := newFakeContractorRepo()
	contractor := &models.Contractor{Name: "Lanka Catering Services", NICNumber: "751234567V"}
	require.NoError(t, contractors.Create(context.Background(), contractor))
	svc := NewDailyService(newFakeDailyRepo(), contractors)

	for _, date := range []string{"2026-08-01", "2026-08-15", "2026-09-01"} {
		in := validDailyInput(contractor.ID)
		in.RecordDate = date
		_, err := svc.Create(context.Background(), 7, in)
		require.NoError(t, err)
	}

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	records, total, err := svc.List(context.Background(), &from, &to, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, records, 2)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snp-mealhub/internal/core/domain"
)

func validContractorInput() *ContractorInput {
	return &ContractorInput{
		Name:       "Lanka Catering Services",
		NICNumber:  "751234567V",
		Telephone:  "011-2345678",
		Address:    "45 Main Street, Colombo 07",
		BankName:   "Bank of Ceylon",
		BankBranch: "Colombo Fort",
		AccountNo:  "0012345678",
		IsActive:   true,
	}
}

func TestContractorCRUD(t *testing.T) {
	svc := NewContractorService(newFakeContractorRepo())

	created, err := svc.Create(context.Background(), validContractorInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	in := validContractorInput()
	in.BankBranch = "Kandy"
	updated, err := svc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Kandy", updated.BankBranch)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kandy", got.BankBranch)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}

func TestContractorValidation(t *testing.T) {
	svc := NewContractorService(newFakeContractorRepo())

	in := validContractorInput()
	in.Name = "  "
	in.NICNumber = "not-a-nic"

	_, err := svc.Create(context.Background(), in)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 2)
}

func TestContractorSearch(t *testing.T) {
	svc := NewContractorService(newFakeContractorRepo())

	for _, name := range []string{"Lanka Catering Services", "Ceylon Foods", "Lanka Meals"} {
		in := validContractorInput()
		in.Name = name
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	matches, total, err := svc.List(context.Background(), "lanka", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, matches, 2)
}

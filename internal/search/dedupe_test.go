package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendatakr/foodsearch/internal/model"
)

func TestDedupeCompanies_FirstWins(t *testing.T) {
	records := []model.CompanyRecord{
		{Name: "농심(주)", LicenseNo: "19680001"},
		{Name: "오뚜기(주)", LicenseNo: "19690003"},
		{Name: "농심(주)", LicenseNo: "19680099"},
	}

	got := DedupeCompanies(records)
	require.Len(t, got, 2)
	assert.Equal(t, "19680001", got[0].LicenseNo)
	assert.Equal(t, "오뚜기(주)", got[1].Name)
}

func TestDedupeCompanies_Empty(t *testing.T) {
	got := DedupeCompanies(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDedupeRepresentatives_FirstWins(t *testing.T) {
	records := []model.RepresentativeChangeRecord{
		{Representative: "김정수", ChangeDate: "2020-03-15"},
		{Representative: "김윤", ChangeDate: "2015-01-20"},
		{Representative: "김정수", ChangeDate: "2024-01-01"},
	}

	got := DedupeRepresentatives(records)
	require.Len(t, got, 2)
	assert.Equal(t, "2020-03-15", got[0].ChangeDate)
	assert.Equal(t, "김윤", got[1].Representative)
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh-patil57/smart-itr-api/internal/rules"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

func TestLoad(t *testing.T) {
	registry, err := rules.Load()
	require.NoError(t, err)
	require.NotNil(t, registry)

	assert.Equal(t, "2024-25", registry.DefaultYear())
	assert.Contains(t, registry.Years(), "2024-25")
}

func TestRegistry_ForYear(t *testing.T) {
	registry := rules.MustLoad()

	tables, err := registry.ForYear("2024-25")
	require.NoError(t, err)
	assert.Equal(t, "2024-25", tables.Year)

	// Empty year selects the default.
	tables, err = registry.ForYear("")
	require.NoError(t, err)
	assert.Equal(t, "2024-25", tables.Year)

	tables, err = registry.ForYear("1999-00")
	require.Error(t, err)
	assert.Nil(t, tables)

	kind, ok := business.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, business.KindUnknownRuleVersion, kind)
}

func TestTableSet_SlabsFor(t *testing.T) {
	tables, err := rules.MustLoad().ForYear("")
	require.NoError(t, err)

	newRegime := tables.SlabsFor(business.RegimeNew, business.AgeGeneral)
	require.Len(t, newRegime, 6)
	assert.Equal(t, int64(300000), newRegime[0].UpperBound)
	assert.Equal(t, int64(0), newRegime[0].RatePercent)
	// Final slab is unbounded.
	assert.Equal(t, int64(0), newRegime[5].UpperBound)
	assert.Equal(t, int64(30), newRegime[5].RatePercent)

	// The new regime ignores the age category.
	assert.Equal(t, newRegime, tables.SlabsFor(business.RegimeNew, business.AgeSuperSenior))

	general := tables.SlabsFor(business.RegimeOld, business.AgeGeneral)
	senior := tables.SlabsFor(business.RegimeOld, business.AgeSenior)
	superSenior := tables.SlabsFor(business.RegimeOld, business.AgeSuperSenior)
	assert.Equal(t, int64(250000), general[0].UpperBound)
	assert.Equal(t, int64(300000), senior[0].UpperBound)
	assert.Equal(t, int64(500000), superSenior[0].UpperBound)
}

func TestTableSet_SurchargeFor(t *testing.T) {
	tables, err := rules.MustLoad().ForYear("")
	require.NoError(t, err)

	individual := tables.SurchargeFor(business.EntityIndividual)
	require.Len(t, individual, 4)
	assert.Equal(t, int64(5000000), individual[0].Threshold)
	assert.Equal(t, int64(37), individual[3].RatePercent)

	assert.Equal(t, individual, tables.SurchargeFor(business.EntityHUF))

	corporate := tables.SurchargeFor(business.EntityCompany)
	require.Len(t, corporate, 2)
	assert.Equal(t, int64(7), corporate[0].RatePercent)
	assert.Equal(t, corporate, tables.SurchargeFor(business.EntityFirm))
}

func TestDeductionLimit_LimitFor(t *testing.T) {
	tables, err := rules.MustLoad().ForYear("")
	require.NoError(t, err)

	d80 := tables.Deductions["80D"]
	assert.Equal(t, int64(25000), d80.LimitFor(business.AgeGeneral))
	assert.Equal(t, int64(50000), d80.LimitFor(business.AgeSenior))
	assert.Equal(t, int64(50000), d80.LimitFor(business.AgeSuperSenior))

	// 80TTA is for non-seniors, 80TTB is its senior counterpart.
	tta := tables.Deductions["80TTA"]
	assert.Equal(t, int64(10000), tta.LimitFor(business.AgeGeneral))
	assert.Equal(t, int64(0), tta.LimitFor(business.AgeSenior))
	ttb := tables.Deductions["80TTB"]
	assert.Equal(t, int64(0), ttb.LimitFor(business.AgeGeneral))
	assert.Equal(t, int64(50000), ttb.LimitFor(business.AgeSenior))

	assert.True(t, tables.Deductions["80E"].Unlimited)
}

func TestTableSet_Rebate(t *testing.T) {
	tables, err := rules.MustLoad().ForYear("")
	require.NoError(t, err)

	assert.Equal(t, int64(700000), tables.Rebate[business.RegimeNew].IncomeCeiling)
	assert.Equal(t, int64(25000), tables.Rebate[business.RegimeNew].Cap)
	assert.Equal(t, int64(500000), tables.Rebate[business.RegimeOld].IncomeCeiling)
	assert.Equal(t, int64(12500), tables.Rebate[business.RegimeOld].Cap)
}

func TestTableSet_AdvanceTax(t *testing.T) {
	tables, err := rules.MustLoad().ForYear("")
	require.NoError(t, err)

	assert.Equal(t, int64(10000), tables.AdvanceTaxMinimum)
	require.Len(t, tables.AdvanceTaxInstallments, 3)
	assert.Equal(t, int64(30), tables.AdvanceTaxInstallments[0].CumulativePercent)
	assert.Equal(t, int64(100), tables.AdvanceTaxInstallments[2].CumulativePercent)
}

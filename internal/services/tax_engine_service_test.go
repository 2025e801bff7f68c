package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh-patil57/smart-itr-api/internal/rules"
	"github.com/lokesh-patil57/smart-itr-api/internal/services"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/params"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

func computeParams(regime business.TaxRegime, income int64) params.ComputeParams {
	return params.ComputeParams{
		EntityType:        business.EntityIndividual,
		TaxRegime:         regime,
		AgeCategory:       business.AgeGeneral,
		ResidentialStatus: business.StatusResident,
		TotalIncome:       income,
	}
}

func TestTaxEngineService_ComputeTax_NewRegime(t *testing.T) {
	service := services.NewTaxEngineService(rules.MustLoad())
	ctx := context.Background()

	t.Run("eight lakh salaried income", func(t *testing.T) {
		breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, 800000))
		require.NoError(t, err)

		assert.Equal(t, int64(800000), breakdown.TaxableIncome)
		assert.Equal(t, int64(35000), breakdown.SlabTax)
		assert.Equal(t, int64(0), breakdown.Rebate)
		assert.Equal(t, int64(0), breakdown.Surcharge)
		assert.Equal(t, int64(1400), breakdown.Cess)
		assert.Equal(t, int64(36400), breakdown.TotalTax)
	})

	t.Run("rebate zeroes out income at the threshold", func(t *testing.T) {
		breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, 700000))
		require.NoError(t, err)

		assert.Equal(t, int64(25000), breakdown.SlabTax)
		assert.Equal(t, int64(25000), breakdown.Rebate)
		assert.Equal(t, int64(0), breakdown.TotalTax)
		assert.Empty(t, breakdown.AdvanceTaxSchedule)
	})

	t.Run("non-residents get no rebate", func(t *testing.T) {
		p := computeParams(business.RegimeNew, 700000)
		p.ResidentialStatus = business.StatusNRI

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		assert.Equal(t, int64(0), breakdown.Rebate)
		assert.Equal(t, int64(26000), breakdown.TotalTax)
	})

	t.Run("deduction claims are ignored", func(t *testing.T) {
		p := computeParams(business.RegimeNew, 800000)
		p.Deductions = map[string]int64{"80C": 150000}

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		assert.Empty(t, breakdown.DeductionsApplied)
		assert.Equal(t, int64(800000), breakdown.TaxableIncome)
		assert.Equal(t, int64(36400), breakdown.TotalTax)
	})

	t.Run("six crore income lands in the top surcharge band", func(t *testing.T) {
		breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, 60000000))
		require.NoError(t, err)

		assert.Equal(t, int64(17700000), breakdown.SlabTax)
		assert.Equal(t, int64(37), breakdown.SurchargeRateApplied)
		assert.Equal(t, int64(6549000), breakdown.Surcharge)
		assert.Equal(t, int64(0), breakdown.MarginalRelief)
		assert.Equal(t, int64(969960), breakdown.Cess)
		assert.Equal(t, int64(25218960), breakdown.TotalTax)
	})
}

func TestTaxEngineService_ComputeTax_OldRegime(t *testing.T) {
	service := services.NewTaxEngineService(rules.MustLoad())
	ctx := context.Background()

	t.Run("80C claim is clamped to the section limit", func(t *testing.T) {
		p := computeParams(business.RegimeOld, 600000)
		p.Deductions = map[string]int64{"80C": 200000}

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		require.Len(t, breakdown.DeductionsApplied, 1)
		assert.Equal(t, int64(200000), breakdown.DeductionsApplied[0].AmountClaimed)
		assert.Equal(t, int64(150000), breakdown.DeductionsApplied[0].AmountAllowed)
		assert.Equal(t, int64(450000), breakdown.TaxableIncome)
		assert.Equal(t, int64(10000), breakdown.SlabTax)
		assert.Equal(t, int64(10000), breakdown.Rebate)
		assert.Equal(t, int64(0), breakdown.TotalTax)
		assert.Empty(t, breakdown.AdvanceTaxSchedule)
	})

	t.Run("senior citizens get the higher 80D limit", func(t *testing.T) {
		p := computeParams(business.RegimeOld, 1200000)
		p.AgeCategory = business.AgeSenior
		p.Deductions = map[string]int64{"80D": 45000}

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		require.Len(t, breakdown.DeductionsApplied, 1)
		assert.Equal(t, int64(45000), breakdown.DeductionsApplied[0].AmountAllowed)
	})

	t.Run("general taxpayers get the base 80D limit", func(t *testing.T) {
		p := computeParams(business.RegimeOld, 1200000)
		p.Deductions = map[string]int64{"80D": 45000}

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		require.Len(t, breakdown.DeductionsApplied, 1)
		assert.Equal(t, int64(25000), breakdown.DeductionsApplied[0].AmountAllowed)
	})

	t.Run("80E education loan interest has no cap", func(t *testing.T) {
		p := computeParams(business.RegimeOld, 2000000)
		p.Deductions = map[string]int64{"80E": 400000}

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		require.Len(t, breakdown.DeductionsApplied, 1)
		assert.Equal(t, int64(400000), breakdown.DeductionsApplied[0].AmountAllowed)
		assert.Equal(t, int64(1600000), breakdown.TaxableIncome)
	})

	t.Run("unknown section codes are recorded but not allowed", func(t *testing.T) {
		p := computeParams(business.RegimeOld, 1200000)
		p.Deductions = map[string]int64{"80ZZ": 50000}

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		require.Len(t, breakdown.DeductionsApplied, 1)
		assert.Equal(t, int64(0), breakdown.DeductionsApplied[0].AmountAllowed)
		assert.Equal(t, int64(1200000), breakdown.TaxableIncome)
	})

	t.Run("super senior slabs start at five lakh", func(t *testing.T) {
		p := computeParams(business.RegimeOld, 500000)
		p.AgeCategory = business.AgeSuperSenior

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		assert.Equal(t, int64(0), breakdown.SlabTax)
		assert.Equal(t, int64(0), breakdown.TotalTax)
	})
}

func TestTaxEngineService_ComputeTax_SurchargeAndRelief(t *testing.T) {
	service := services.NewTaxEngineService(rules.MustLoad())
	ctx := context.Background()

	t.Run("income at a threshold stays in the band below", func(t *testing.T) {
		breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, 50000000))
		require.NoError(t, err)

		assert.Equal(t, int64(25), breakdown.SurchargeRateApplied)
		assert.Equal(t, int64(19110000), breakdown.TotalTax)
	})

	t.Run("one rupee above a threshold costs at most one rupee", func(t *testing.T) {
		atThreshold, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, 50000000))
		require.NoError(t, err)

		justAbove, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, 50000001))
		require.NoError(t, err)

		assert.Equal(t, int64(37), justAbove.SurchargeRateApplied)
		assert.Positive(t, justAbove.MarginalRelief)
		assert.LessOrEqual(t, justAbove.TotalTax, atThreshold.TotalTax+1)
	})

	t.Run("relief never exceeds the surcharge", func(t *testing.T) {
		for _, income := range []int64{5000001, 10000001, 20000001, 50000001} {
			breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, income))
			require.NoError(t, err)
			assert.LessOrEqual(t, breakdown.MarginalRelief, breakdown.Surcharge, "income %d", income)
		}
	})

	t.Run("companies use the corporate surcharge table", func(t *testing.T) {
		p := computeParams(business.RegimeNew, 60000000)
		p.EntityType = business.EntityCompany

		breakdown, err := service.ComputeTax(ctx, p)
		require.NoError(t, err)

		assert.Equal(t, int64(7), breakdown.SurchargeRateApplied)
	})

	t.Run("total tax is monotonic in income", func(t *testing.T) {
		var previous int64
		for income := int64(0); income <= 60000000; income += 997651 {
			breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, income))
			require.NoError(t, err)
			require.GreaterOrEqual(t, breakdown.TotalTax, previous, "income %d", income)
			previous = breakdown.TotalTax
		}
	})
}

func TestTaxEngineService_ComputeTax_BreakdownConsistency(t *testing.T) {
	service := services.NewTaxEngineService(rules.MustLoad())
	ctx := context.Background()

	for _, income := range []int64{800000, 2500000, 7000000, 60000000} {
		breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, income))
		require.NoError(t, err)

		var slabSum int64
		for _, line := range breakdown.SlabLines {
			assert.Positive(t, line.TaxInSlab)
			slabSum += line.TaxInSlab
		}
		assert.Equal(t, breakdown.SlabTax, slabSum, "income %d", income)

		preCess := breakdown.SlabTax + breakdown.Surcharge - breakdown.MarginalRelief - breakdown.Rebate
		assert.Equal(t, breakdown.TotalTax, preCess+breakdown.Cess, "income %d", income)
	}
}

func TestTaxEngineService_ComputeTax_AdvanceTaxSchedule(t *testing.T) {
	service := services.NewTaxEngineService(rules.MustLoad())
	ctx := context.Background()

	breakdown, err := service.ComputeTax(ctx, computeParams(business.RegimeNew, 800000))
	require.NoError(t, err)

	require.Len(t, breakdown.AdvanceTaxSchedule, 3)
	assert.Equal(t, int64(10920), breakdown.AdvanceTaxSchedule[0].Amount)
	assert.Equal(t, int64(21840), breakdown.AdvanceTaxSchedule[1].Amount)
	assert.Equal(t, int64(36400), breakdown.AdvanceTaxSchedule[2].Amount)
	assert.Equal(t, int64(100), breakdown.AdvanceTaxSchedule[2].CumulativePercent)

	// Liability below the minimum owes no installments.
	p := computeParams(business.RegimeNew, 400000)
	p.ResidentialStatus = business.StatusNRI
	small, err := service.ComputeTax(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int64(5200), small.TotalTax)
	assert.Empty(t, small.AdvanceTaxSchedule)
}

func TestTaxEngineService_ComputeTax_InvalidInput(t *testing.T) {
	service := services.NewTaxEngineService(rules.MustLoad())
	ctx := context.Background()

	tests := []struct {
		name         string
		mutate       func(*params.ComputeParams)
		expectedKind business.ErrorKind
	}{
		{
			name:         "negative income",
			mutate:       func(p *params.ComputeParams) { p.TotalIncome = -1 },
			expectedKind: business.KindInvalidIncome,
		},
		{
			name:         "income above the sanity ceiling",
			mutate:       func(p *params.ComputeParams) { p.TotalIncome = 1000000001 },
			expectedKind: business.KindInvalidIncome,
		},
		{
			name:         "negative deduction claim",
			mutate:       func(p *params.ComputeParams) { p.Deductions = map[string]int64{"80C": -1} },
			expectedKind: business.KindInvalidIncome,
		},
		{
			name:         "unknown regime",
			mutate:       func(p *params.ComputeParams) { p.TaxRegime = "flat" },
			expectedKind: business.KindInvalidProfile,
		},
		{
			name:         "unknown age category",
			mutate:       func(p *params.ComputeParams) { p.AgeCategory = "minor" },
			expectedKind: business.KindInvalidProfile,
		},
		{
			name:         "unknown assessment year",
			mutate:       func(p *params.ComputeParams) { p.AssessmentYear = "1999-00" },
			expectedKind: business.KindUnknownRuleVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := computeParams(business.RegimeOld, 800000)
			tt.mutate(&p)

			breakdown, err := service.ComputeTax(ctx, p)
			require.Error(t, err)
			assert.Nil(t, breakdown)

			kind, ok := business.KindOf(err)
			require.True(t, ok, "expected a domain error, got %v", err)
			assert.Equal(t, tt.expectedKind, kind)
		})
	}
}

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

func newRecommendationService(t *testing.T) *services.RecommendationService {
	t.Helper()
	registry := rules.MustLoad()
	return services.NewRecommendationService(registry, services.NewTaxEngineService(registry))
}

func TestRecommendationService_RecommendSavings_Suggestions(t *testing.T) {
	service := newRecommendationService(t)
	ctx := context.Background()

	tests := []struct {
		name             string
		income           int64
		expectedSections []string
	}{
		{
			name:             "low income gets only the health cover nudge",
			income:           400000,
			expectedSections: []string{"80D"},
		},
		{
			name:             "mid income adds the 80C suggestion",
			income:           700000,
			expectedSections: []string{"80C", "80D"},
		},
		{
			name:             "higher income adds the NPS suggestion",
			income:           1200000,
			expectedSections: []string{"80C", "80D", "80CCD1B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice, err := service.RecommendSavings(ctx, params.RecommendParams{
				TotalIncome:       tt.income,
				AgeCategory:       business.AgeGeneral,
				ResidentialStatus: business.StatusResident,
			})
			require.NoError(t, err)

			sections := make([]string, 0, len(advice.Suggestions))
			for _, s := range advice.Suggestions {
				sections = append(sections, s.Section)
			}
			assert.Equal(t, tt.expectedSections, sections)
		})
	}
}

func TestRecommendationService_RecommendSavings_SuggestionAmounts(t *testing.T) {
	service := newRecommendationService(t)

	advice, err := service.RecommendSavings(context.Background(), params.RecommendParams{
		TotalIncome:       1200000,
		AgeCategory:       business.AgeGeneral,
		ResidentialStatus: business.StatusResident,
	})
	require.NoError(t, err)
	require.Len(t, advice.Suggestions, 3)

	// 30% of income exceeds the 80C ceiling, so the suggestion clamps.
	assert.Equal(t, int64(150000), advice.Suggestions[0].Amount)
	assert.Equal(t, "high", advice.Suggestions[0].Priority)
	assert.Equal(t, int64(25000), advice.Suggestions[1].Amount)
	assert.Equal(t, int64(50000), advice.Suggestions[2].Amount)
	assert.Equal(t, "medium", advice.Suggestions[2].Priority)

	// Below ten lakh the health cover suggestion drops to the base amount.
	advice, err = service.RecommendSavings(context.Background(), params.RecommendParams{
		TotalIncome:       600000,
		AgeCategory:       business.AgeGeneral,
		ResidentialStatus: business.StatusResident,
	})
	require.NoError(t, err)
	require.Len(t, advice.Suggestions, 2)
	assert.Equal(t, int64(150000), advice.Suggestions[0].Amount)
	assert.Equal(t, int64(15000), advice.Suggestions[1].Amount)
}

func TestRecommendationService_RecommendSavings_Headroom(t *testing.T) {
	service := newRecommendationService(t)

	advice, err := service.RecommendSavings(context.Background(), params.RecommendParams{
		TotalIncome:       1200000,
		AgeCategory:       business.AgeGeneral,
		ResidentialStatus: business.StatusResident,
		Deductions:        map[string]int64{"80C": 100000, "80D": 40000},
	})
	require.NoError(t, err)

	headroom := make(map[string]business.SectionHeadroom, len(advice.UnusedHeadroom))
	for _, h := range advice.UnusedHeadroom {
		headroom[h.Section] = h
	}

	require.Contains(t, headroom, "80C")
	assert.Equal(t, int64(50000), headroom["80C"].Remaining)

	// Claims above the limit report zero headroom, not negative.
	require.Contains(t, headroom, "80D")
	assert.Equal(t, int64(25000), headroom["80D"].Claimed)
	assert.Equal(t, int64(0), headroom["80D"].Remaining)

	// Unlimited sections and zero-limit sections have no headroom entry.
	assert.NotContains(t, headroom, "80E")
	assert.NotContains(t, headroom, "80TTB")
}

func TestRecommendationService_RecommendSavings_RealizedSavings(t *testing.T) {
	service := newRecommendationService(t)

	advice, err := service.RecommendSavings(context.Background(), params.RecommendParams{
		TotalIncome:       1200000,
		AgeCategory:       business.AgeGeneral,
		ResidentialStatus: business.StatusResident,
		Deductions:        map[string]int64{"80C": 150000},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(132600), advice.CurrentTax)
	assert.Equal(t, int64(179400), advice.TaxWithoutDeductions)
	assert.Equal(t, int64(46800), advice.RealizedSavings)
}

func TestRecommendationService_RecommendSavings_InvalidInput(t *testing.T) {
	service := newRecommendationService(t)

	_, err := service.RecommendSavings(context.Background(), params.RecommendParams{
		TotalIncome:       -1,
		AgeCategory:       business.AgeGeneral,
		ResidentialStatus: business.StatusResident,
	})
	require.Error(t, err)
	kind, ok := business.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, business.KindInvalidIncome, kind)

	_, err = service.RecommendSavings(context.Background(), params.RecommendParams{
		TotalIncome:       800000,
		AgeCategory:       business.AgeGeneral,
		ResidentialStatus: business.StatusResident,
		AssessmentYear:    "1999-00",
	})
	require.Error(t, err)
	kind, ok = business.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, business.KindUnknownRuleVersion, kind)
}

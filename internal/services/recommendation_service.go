package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/lokesh-patil57/smart-itr-api/internal/constants"
	"github.com/lokesh-patil57/smart-itr-api/internal/interfaces"
	"github.com/lokesh-patil57/smart-itr-api/internal/logger"
	"github.com/lokesh-patil57/smart-itr-api/internal/rules"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/params"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// RecommendationService suggests tax-saving avenues for a profile and
// quantifies what the already-claimed deductions are worth. Savings are
// measured through the tax engine under the old regime, the only regime
// where deductions change the liability.
type RecommendationService struct {
	registry   *rules.Registry
	calculator interfaces.TaxCalculator
	logger     *zap.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(registry *rules.Registry, calculator interfaces.TaxCalculator) *RecommendationService {
	return &RecommendationService{
		registry:   registry,
		calculator: calculator,
		logger:     logger.Log,
	}
}

// RecommendSavings produces investment suggestions, per-section unused
// headroom, and the rupee value of the deductions already claimed.
func (s *RecommendationService) RecommendSavings(ctx context.Context, p params.RecommendParams) (*business.TaxSavingAdvice, error) {
	tables, err := s.registry.ForYear(p.AssessmentYear)
	if err != nil {
		return nil, err
	}
	if p.TotalIncome < 0 {
		return nil, business.NewInvalidIncome("total income cannot be negative")
	}
	if p.TotalIncome > tables.SanityIncomeCeiling {
		return nil, business.NewInvalidIncome("total income exceeds the supported ceiling")
	}

	advice := &business.TaxSavingAdvice{
		Suggestions:    s.buildSuggestions(p.TotalIncome, tables),
		UnusedHeadroom: buildHeadroom(p.Deductions, p.AgeCategory, tables),
	}

	if err := s.measureSavings(ctx, p, advice); err != nil {
		return nil, err
	}

	s.logger.Info("Produced tax-saving advice",
		zap.Int64("total_income", p.TotalIncome),
		zap.Int("suggestions", len(advice.Suggestions)),
		zap.Int64("realized_savings", advice.RealizedSavings))

	return advice, nil
}

func (s *RecommendationService) buildSuggestions(income int64, tables *rules.TableSet) []business.TaxSavingSuggestion {
	var suggestions []business.TaxSavingSuggestion

	if income > 500000 {
		amount := income * 30 / 100
		if limit, ok := tables.Deductions[constants.Section80C]; ok && amount > limit.General {
			amount = limit.General
		}
		suggestions = append(suggestions, business.TaxSavingSuggestion{
			Section:     constants.Section80C,
			Amount:      amount,
			Priority:    constants.HighPriority,
			Description: "Invest in PPF, ELSS, NSC or life insurance under section 80C",
		})
	}

	healthCover := int64(15000)
	if income > 1000000 {
		healthCover = 25000
	}
	if income > 0 {
		suggestions = append(suggestions, business.TaxSavingSuggestion{
			Section:     constants.Section80D,
			Amount:      healthCover,
			Priority:    constants.HighPriority,
			Description: "Buy health insurance for self and family under section 80D",
		})
	}

	if income > 800000 {
		suggestions = append(suggestions, business.TaxSavingSuggestion{
			Section:     constants.Section80CCD1B,
			Amount:      50000,
			Priority:    constants.MediumPriority,
			Description: "Contribute to NPS for the additional 80CCD(1B) deduction",
		})
	}

	return suggestions
}

// buildHeadroom reports unused room under each flat-limit section. Unlimited
// sections have no headroom to report.
func buildHeadroom(claims map[string]int64, age business.AgeCategory, tables *rules.TableSet) []business.SectionHeadroom {
	sections := make([]string, 0, len(tables.Deductions))
	for section := range tables.Deductions {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	var headroom []business.SectionHeadroom
	for _, section := range sections {
		limit := tables.Deductions[section]
		if limit.Unlimited {
			continue
		}
		sectionLimit := limit.LimitFor(age)
		if sectionLimit <= 0 {
			continue
		}
		claimed := claims[section]
		if claimed > sectionLimit {
			claimed = sectionLimit
		}
		headroom = append(headroom, business.SectionHeadroom{
			Section:   section,
			Limit:     sectionLimit,
			Claimed:   claimed,
			Remaining: sectionLimit - claimed,
		})
	}
	return headroom
}

// measureSavings runs the engine twice under the old regime, with and
// without the claimed deductions, and records the difference.
func (s *RecommendationService) measureSavings(ctx context.Context, p params.RecommendParams, advice *business.TaxSavingAdvice) error {
	compute := params.ComputeParams{
		EntityType:        business.EntityIndividual,
		TaxRegime:         business.RegimeOld,
		AgeCategory:       p.AgeCategory,
		ResidentialStatus: p.ResidentialStatus,
		TotalIncome:       p.TotalIncome,
		Deductions:        p.Deductions,
		AssessmentYear:    p.AssessmentYear,
	}

	withDeductions, err := s.calculator.ComputeTax(ctx, compute)
	if err != nil {
		return err
	}
	compute.Deductions = nil
	withoutDeductions, err := s.calculator.ComputeTax(ctx, compute)
	if err != nil {
		return err
	}

	advice.CurrentTax = withDeductions.TotalTax
	advice.TaxWithoutDeductions = withoutDeductions.TotalTax
	advice.RealizedSavings = withoutDeductions.TotalTax - withDeductions.TotalTax
	return nil
}

package requests

import (
	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/params"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// ClassifyFormRequest represents the request body for form classification
type ClassifyFormRequest struct {
	EntityType              string   `json:"entity_type" binding:"required"`
	IncomeSources           []string `json:"income_sources,omitempty"`
	UsesPresumptiveTaxation string   `json:"uses_presumptive_taxation,omitempty"`
	TurnoverBelow2Cr        string   `json:"turnover_below_2cr,omitempty"`
	HasForeignIncome        bool     `json:"has_foreign_income"`
	HasMultipleProperties   bool     `json:"has_multiple_properties"`
	TotalIncome             *int64   `json:"total_income" binding:"required"`
	ResidentialStatus       string   `json:"residential_status,omitempty"`
	AssessmentYear          string   `json:"assessment_year,omitempty"`
}

// ToParams converts the request into classifier parameters, applying the
// documented defaults for omitted optional fields.
func (r ClassifyFormRequest) ToParams() params.ClassifyParams {
	sources := make([]business.IncomeSource, 0, len(r.IncomeSources))
	for _, src := range r.IncomeSources {
		sources = append(sources, business.IncomeSource(src))
	}
	return params.ClassifyParams{
		EntityType:              business.EntityType(r.EntityType),
		IncomeSources:           sources,
		UsesPresumptiveTaxation: triStateOrDefault(r.UsesPresumptiveTaxation),
		TurnoverBelow2Cr:        triStateOrDefault(r.TurnoverBelow2Cr),
		HasForeignIncome:        r.HasForeignIncome,
		HasMultipleProperties:   r.HasMultipleProperties,
		TotalIncome:             *r.TotalIncome,
		ResidentialStatus:       residentialOrDefault(r.ResidentialStatus),
		AssessmentYear:          r.AssessmentYear,
	}
}

// ComputeTaxRequest represents the request body for a tax computation
type ComputeTaxRequest struct {
	EntityType        string           `json:"entity_type,omitempty"`
	TaxRegime         string           `json:"tax_regime" binding:"required,oneof=new old"`
	AgeCategory       string           `json:"age_category,omitempty" binding:"omitempty,oneof=general senior super_senior"`
	ResidentialStatus string           `json:"residential_status,omitempty" binding:"omitempty,oneof=resident nri rnor"`
	TotalIncome       *int64           `json:"total_income" binding:"required"`
	Deductions        map[string]int64 `json:"deductions,omitempty"`
	AssessmentYear    string           `json:"assessment_year,omitempty"`
}

// ToParams converts the request into engine parameters. An omitted entity
// defaults to individual, age to general, and status to resident.
func (r ComputeTaxRequest) ToParams() params.ComputeParams {
	entity := business.EntityType(r.EntityType)
	if r.EntityType == "" {
		entity = business.EntityIndividual
	}
	return params.ComputeParams{
		EntityType:        entity,
		TaxRegime:         business.TaxRegime(r.TaxRegime),
		AgeCategory:       ageOrDefault(r.AgeCategory),
		ResidentialStatus: residentialOrDefault(r.ResidentialStatus),
		TotalIncome:       *r.TotalIncome,
		Deductions:        r.Deductions,
		AssessmentYear:    r.AssessmentYear,
	}
}

// RecommendSavingsRequest represents the request body for tax-saving advice
type RecommendSavingsRequest struct {
	TotalIncome       *int64           `json:"total_income" binding:"required"`
	AgeCategory       string           `json:"age_category,omitempty" binding:"omitempty,oneof=general senior super_senior"`
	ResidentialStatus string           `json:"residential_status,omitempty" binding:"omitempty,oneof=resident nri rnor"`
	Deductions        map[string]int64 `json:"deductions,omitempty"`
	AssessmentYear    string           `json:"assessment_year,omitempty"`
}

// ToParams converts the request into advisor parameters.
func (r RecommendSavingsRequest) ToParams() params.RecommendParams {
	return params.RecommendParams{
		TotalIncome:       *r.TotalIncome,
		AgeCategory:       ageOrDefault(r.AgeCategory),
		ResidentialStatus: residentialOrDefault(r.ResidentialStatus),
		Deductions:        r.Deductions,
		AssessmentYear:    r.AssessmentYear,
	}
}

func triStateOrDefault(raw string) business.TriState {
	if raw == "" {
		return business.TriNotApplicable
	}
	return business.TriState(raw)
}

func residentialOrDefault(raw string) business.ResidentialStatus {
	if raw == "" {
		return business.StatusResident
	}
	return business.ResidentialStatus(raw)
}

func ageOrDefault(raw string) business.AgeCategory {
	if raw == "" {
		return business.AgeGeneral
	}
	return business.AgeCategory(raw)
}

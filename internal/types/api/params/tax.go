package params

import (
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// ClassifyParams contains the income profile facts the classification
// cascade evaluates. The caller is responsible for collecting raw user input
// into this shape.
type ClassifyParams struct {
	EntityType              business.EntityType
	IncomeSources           []business.IncomeSource
	UsesPresumptiveTaxation business.TriState
	TurnoverBelow2Cr        business.TriState
	HasForeignIncome        bool
	HasMultipleProperties   bool
	TotalIncome             int64
	ResidentialStatus       business.ResidentialStatus
	AssessmentYear          string // empty selects the default year
}

// ComputeParams contains the profile facts the tax engine needs.
type ComputeParams struct {
	EntityType        business.EntityType
	TaxRegime         business.TaxRegime
	AgeCategory       business.AgeCategory
	ResidentialStatus business.ResidentialStatus
	TotalIncome       int64
	Deductions        map[string]int64 // section code -> claimed amount
	AssessmentYear    string
}

// RecommendParams contains the facts the recommendation rules consult.
type RecommendParams struct {
	TotalIncome       int64
	AgeCategory       business.AgeCategory
	ResidentialStatus business.ResidentialStatus
	Deductions        map[string]int64
	AssessmentYear    string
}

package responses

import (
	"time"

	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// ClassificationResponse pairs the selected form with the rule trace that
// selected it and the catalog entry for the form.
type ClassificationResponse struct {
	Form           business.FormID    `json:"form"`
	ReasonTrace    []string           `json:"reason_trace"`
	FormDetails    *business.FormInfo `json:"form_details,omitempty"`
	AssessmentYear string             `json:"assessment_year"`
}

// TaxComputationResponse wraps a tax breakdown with calculation metadata
type TaxComputationResponse struct {
	CalculationID  string                `json:"calculation_id"`
	AssessmentYear string                `json:"assessment_year"`
	CalculatedAt   time.Time             `json:"calculated_at"`
	Breakdown      business.TaxBreakdown `json:"breakdown"`
}

// RecommendationResponse wraps tax-saving advice with calculation metadata
type RecommendationResponse struct {
	CalculationID  string                   `json:"calculation_id"`
	AssessmentYear string                   `json:"assessment_year"`
	CalculatedAt   time.Time                `json:"calculated_at"`
	Advice         business.TaxSavingAdvice `json:"advice"`
}

// AssessmentYearsResponse lists the configured assessment years
type AssessmentYearsResponse struct {
	DefaultYear string   `json:"default_year"`
	Years       []string `json:"years"`
}

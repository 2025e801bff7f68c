package interfaces

import (
	"context"

	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/params"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/tax_services.go -package=mocks

// TaxClassifier determines which return form an income profile must file.
type TaxClassifier interface {
	ClassifyForm(ctx context.Context, params params.ClassifyParams) (*business.ClassificationResult, error)
}

// TaxCalculator computes the itemized tax liability for a profile.
type TaxCalculator interface {
	ComputeTax(ctx context.Context, params params.ComputeParams) (*business.TaxBreakdown, error)
}

// TaxAdvisor produces tax-saving suggestions for a profile.
type TaxAdvisor interface {
	RecommendSavings(ctx context.Context, params params.RecommendParams) (*business.TaxSavingAdvice, error)
}

// FormCatalog serves the static return-form knowledge base.
type FormCatalog interface {
	ListForms(ctx context.Context) []business.FormInfo
	GetForm(ctx context.Context, id business.FormID) (*business.FormInfo, error)
}

package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockTaxClassifierForTest creates a new mock TaxClassifier for testing
func NewMockTaxClassifierForTest(t *testing.T) *MockTaxClassifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxClassifier(ctrl)
}

// NewMockTaxCalculatorForTest creates a new mock TaxCalculator for testing
func NewMockTaxCalculatorForTest(t *testing.T) *MockTaxCalculator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxCalculator(ctrl)
}

// NewMockTaxAdvisorForTest creates a new mock TaxAdvisor for testing
func NewMockTaxAdvisorForTest(t *testing.T) *MockTaxAdvisor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxAdvisor(ctrl)
}

// NewMockFormCatalogForTest creates a new mock FormCatalog for testing
func NewMockFormCatalogForTest(t *testing.T) *MockFormCatalog {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockFormCatalog(ctrl)
}

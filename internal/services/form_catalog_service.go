package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lokesh-patil57/smart-itr-api/internal/logger"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// FormCatalogService serves the static return-form knowledge base: display
// names, eligibility bullets, and the documents a filer should gather.
type FormCatalogService struct {
	forms  map[business.FormID]business.FormInfo
	order  []business.FormID
	logger *zap.Logger
}

// NewFormCatalogService creates a new form catalog service
func NewFormCatalogService() *FormCatalogService {
	return &FormCatalogService{
		forms:  formCatalog,
		order:  formOrder,
		logger: logger.Log,
	}
}

// ListForms returns every catalog entry in ITR-1..ITR-7 order.
func (s *FormCatalogService) ListForms(ctx context.Context) []business.FormInfo {
	forms := make([]business.FormInfo, 0, len(s.order))
	for _, id := range s.order {
		forms = append(forms, s.forms[id])
	}
	return forms
}

// GetForm returns the catalog entry for one form.
func (s *FormCatalogService) GetForm(ctx context.Context, id business.FormID) (*business.FormInfo, error) {
	info, ok := s.forms[id]
	if !ok {
		return nil, business.NewInvalidProfile(fmt.Sprintf("unknown return form %q", id))
	}
	return &info, nil
}

var formOrder = []business.FormID{
	business.FormITR1, business.FormITR2, business.FormITR3, business.FormITR4,
	business.FormITR5, business.FormITR6, business.FormITR7,
}

var formCatalog = map[business.FormID]business.FormInfo{
	business.FormITR1: {
		ID:   business.FormITR1,
		Name: "ITR-1 (Sahaj)",
		Eligibility: []string{
			"Resident individuals",
			"Salary/Pension income",
			"Income from one house property",
			"Income from other sources (interest, dividends)",
			"Agricultural income up to ₹5,000",
			"Total income up to ₹50 lakh",
		},
		CannotFile: []string{
			"Income above ₹50 lakh",
			"Capital gains",
			"Business/Professional income",
			"Multiple house properties",
			"Foreign income",
		},
		Documents: []string{
			"PAN & Aadhaar Card",
			"Form 16 from employer",
			"Form 26AS/AIS",
			"Bank statements",
			"Investment proofs",
			"House property documents (if applicable)",
		},
		DownloadLink: "/forms/ITR-1.pdf",
	},
	business.FormITR2: {
		ID:   business.FormITR2,
		Name: "ITR-2",
		Eligibility: []string{
			"Individuals & HUFs",
			"Salary/Pension income",
			"Multiple house properties",
			"Capital gains",
			"Foreign income/assets",
			"Income above ₹50 lakh",
		},
		CannotFile: []string{
			"Business/Professional income",
		},
		Documents: []string{
			"Form 16 and Form 26AS/AIS",
			"Capital gains statements",
			"Property documents",
			"Foreign income proofs",
			"Investment statements",
		},
		DownloadLink: "/forms/ITR-2.pdf",
	},
	business.FormITR3: {
		ID:   business.FormITR3,
		Name: "ITR-3",
		Eligibility: []string{
			"Individuals & HUFs with business/professional income",
			"Company directors",
			"Partnership firm partners",
			"Income from capital gains",
			"Multiple properties",
			"Foreign assets",
		},
		Documents: []string{
			"Business balance sheet",
			"Profit & loss statement",
			"Form 16A",
			"Capital gains details",
			"Bank statements",
		},
		DownloadLink: "/forms/ITR-3.pdf",
	},
	business.FormITR4: {
		ID:   business.FormITR4,
		Name: "ITR-4 (Sugam)",
		Eligibility: []string{
			"Presumptive taxation cases",
			"Business income (Section 44AD)",
			"Professional income (Section 44ADA)",
			"Transport income (Section 44AE)",
			"Total income up to ₹50 lakh",
		},
		CannotFile: []string{
			"Regular business expenses claims",
			"Business turnover above ₹2 crore",
		},
		Documents: []string{
			"PAN details",
			"Bank statements",
			"Turnover details",
			"GST returns (if applicable)",
		},
		DownloadLink: "/forms/ITR-4.pdf",
	},
	business.FormITR5: {
		ID:   business.FormITR5,
		Name: "ITR-5",
		Eligibility: []string{
			"Firms",
			"LLPs",
			"Association of Persons (AOPs)",
			"Body of Individuals (BOIs)",
		},
		CannotFile: []string{
			"Individuals",
			"HUFs",
			"Companies",
		},
		Documents: []string{
			"Business financials",
			"Partner details",
			"Income statements",
			"Tax audit report",
		},
		DownloadLink: "/forms/ITR-5.pdf",
	},
	business.FormITR6: {
		ID:   business.FormITR6,
		Name: "ITR-6",
		Eligibility: []string{
			"Companies (except Section 11 entities)",
			"Corporate tax entities",
		},
		Documents: []string{
			"Profit & Loss account",
			"Balance Sheet",
			"Tax computation",
			"Shareholder details",
			"Director details",
		},
		DownloadLink: "/forms/ITR-6.pdf",
	},
	business.FormITR7: {
		ID:   business.FormITR7,
		Name: "ITR-7",
		Eligibility: []string{
			"Charitable trusts (Section 139(4A))",
			"Political parties (Section 139(4B))",
			"Scientific research institutions (Section 139(4C))",
			"Educational institutions (Section 139(4D))",
		},
		Documents: []string{
			"Trust/Entity PAN",
			"Income & expenditure statement",
			"Donation records",
			"Tax exemption details",
		},
		DownloadLink: "/forms/ITR-7.pdf",
	},
}

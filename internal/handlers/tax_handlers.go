package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/requests"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/responses"
)

// TaxHandler exposes the classification, computation and recommendation
// operations.
type TaxHandler struct {
	common *CommonServices
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(common *CommonServices) *TaxHandler {
	return &TaxHandler{common: common}
}

// ClassifyForm godoc
// @Summary      Classify an income profile into a return form
// @Description  Runs the profile through the classification cascade and returns the selected ITR form with the rule trace
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        profile  body      requests.ClassifyFormRequest  true  "Income profile"
// @Success      200      {object}  responses.ClassificationResponse
// @Failure      400      {object}  responses.ErrorResponse  "Invalid profile"
// @Failure      404      {object}  responses.ErrorResponse  "Unknown assessment year"
// @Router       /tax/classify [post]
func (h *TaxHandler) ClassifyForm(c *gin.Context) {
	var req requests.ClassifyFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := req.ToParams()
	result, err := h.common.classifier.ClassifyForm(c.Request.Context(), params)
	if err != nil {
		sendDomainError(c, err)
		return
	}

	response := responses.ClassificationResponse{
		Form:           result.Form,
		ReasonTrace:    result.ReasonTrace,
		AssessmentYear: h.resolveYear(params.AssessmentYear),
	}
	if details, err := h.common.catalog.GetForm(c.Request.Context(), result.Form); err == nil {
		response.FormDetails = details
	}

	sendSuccess(c, http.StatusOK, response)
}

// ComputeTax godoc
// @Summary      Compute the tax liability for a profile
// @Description  Produces the itemized breakdown: deductions, slab lines, rebate, surcharge with marginal relief, cess and the advance-tax schedule
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        computation  body      requests.ComputeTaxRequest  true  "Computation input"
// @Success      200          {object}  responses.TaxComputationResponse
// @Failure      400          {object}  responses.ErrorResponse  "Invalid income or profile"
// @Failure      404          {object}  responses.ErrorResponse  "Unknown assessment year"
// @Router       /tax/compute [post]
func (h *TaxHandler) ComputeTax(c *gin.Context) {
	var req requests.ComputeTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := req.ToParams()
	breakdown, err := h.common.calculator.ComputeTax(c.Request.Context(), params)
	if err != nil {
		sendDomainError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.TaxComputationResponse{
		CalculationID:  uuid.New().String(),
		AssessmentYear: h.resolveYear(params.AssessmentYear),
		CalculatedAt:   time.Now().UTC(),
		Breakdown:      *breakdown,
	})
}

// RecommendSavings godoc
// @Summary      Recommend tax-saving investments
// @Description  Suggests deduction avenues, reports unused section headroom and quantifies the savings from claimed deductions
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        profile  body      requests.RecommendSavingsRequest  true  "Saving profile"
// @Success      200      {object}  responses.RecommendationResponse
// @Failure      400      {object}  responses.ErrorResponse  "Invalid income"
// @Failure      404      {object}  responses.ErrorResponse  "Unknown assessment year"
// @Router       /tax/recommendations [post]
func (h *TaxHandler) RecommendSavings(c *gin.Context) {
	var req requests.RecommendSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params := req.ToParams()
	advice, err := h.common.advisor.RecommendSavings(c.Request.Context(), params)
	if err != nil {
		sendDomainError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.RecommendationResponse{
		CalculationID:  uuid.New().String(),
		AssessmentYear: h.resolveYear(params.AssessmentYear),
		CalculatedAt:   time.Now().UTC(),
		Advice:         *advice,
	})
}

// ListAssessmentYears godoc
// @Summary      List configured assessment years
// @Tags         tax
// @Produce      json
// @Success      200  {object}  responses.AssessmentYearsResponse
// @Router       /tax/years [get]
func (h *TaxHandler) ListAssessmentYears(c *gin.Context) {
	sendSuccess(c, http.StatusOK, responses.AssessmentYearsResponse{
		DefaultYear: h.common.registry.DefaultYear(),
		Years:       h.common.registry.Years(),
	})
}

func (h *TaxHandler) resolveYear(year string) string {
	if year == "" {
		return h.common.registry.DefaultYear()
	}
	return year
}

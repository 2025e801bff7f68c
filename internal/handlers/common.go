package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokesh-patil57/smart-itr-api/internal/interfaces"
	"github.com/lokesh-patil57/smart-itr-api/internal/logger"
	"github.com/lokesh-patil57/smart-itr-api/internal/rules"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/api/responses"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	classifier interfaces.TaxClassifier
	calculator interfaces.TaxCalculator
	advisor    interfaces.TaxAdvisor
	catalog    interfaces.FormCatalog
	registry   *rules.Registry
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(
	classifier interfaces.TaxClassifier,
	calculator interfaces.TaxCalculator,
	advisor interfaces.TaxAdvisor,
	catalog interfaces.FormCatalog,
	registry *rules.Registry,
) *CommonServices {
	return &CommonServices{
		classifier: classifier,
		calculator: calculator,
		advisor:    advisor,
		catalog:    catalog,
		registry:   registry,
	}
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, responses.ErrorResponse{Error: message})
}

// sendDomainError maps domain error kinds to HTTP status codes: validation
// failures are 400, unknown assessment years 404, anything else 500.
func sendDomainError(c *gin.Context, err error) {
	kind, ok := business.KindOf(err)
	if !ok {
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	status := http.StatusBadRequest
	if kind == business.KindUnknownRuleVersion {
		status = http.StatusNotFound
	}

	logger.Warn("Request rejected",
		zap.String("kind", string(kind)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(status, responses.ErrorResponse{Error: err.Error(), Kind: string(kind)})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}, count int) {
	c.JSON(http.StatusOK, responses.ListResponse{Data: items, Count: count})
}

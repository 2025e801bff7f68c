package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

// FormHandler exposes the return-form knowledge base.
type FormHandler struct {
	common *CommonServices
}

// NewFormHandler creates a new form handler
func NewFormHandler(common *CommonServices) *FormHandler {
	return &FormHandler{common: common}
}

// ListForms godoc
// @Summary      List all return forms
// @Description  Returns the catalog entry for every ITR form
// @Tags         forms
// @Produce      json
// @Success      200  {object}  responses.ListResponse
// @Router       /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	forms := h.common.catalog.ListForms(c.Request.Context())
	sendList(c, forms, len(forms))
}

// GetForm godoc
// @Summary      Get one return form
// @Description  Returns the catalog entry for a single ITR form
// @Tags         forms
// @Produce      json
// @Param        form_id  path      string  true  "Form ID (ITR1..ITR7)"
// @Success      200      {object}  business.FormInfo
// @Failure      404      {object}  responses.ErrorResponse  "Unknown form"
// @Router       /forms/{form_id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	formID := business.FormID(c.Param("form_id"))

	form, err := h.common.catalog.GetForm(c.Request.Context(), formID)
	if err != nil {
		sendError(c, http.StatusNotFound, "Form not found", err)
		return
	}

	sendSuccess(c, http.StatusOK, form)
}

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokesh-patil57/smart-itr-api/internal/services"
	"github.com/lokesh-patil57/smart-itr-api/internal/types/business"
)

func TestFormCatalogService_ListForms(t *testing.T) {
	service := services.NewFormCatalogService()

	forms := service.ListForms(context.Background())
	require.Len(t, forms, 7)

	assert.Equal(t, business.FormITR1, forms[0].ID)
	assert.Equal(t, business.FormITR7, forms[6].ID)

	for _, form := range forms {
		assert.NotEmpty(t, form.Name, "form %s", form.ID)
		assert.NotEmpty(t, form.Eligibility, "form %s", form.ID)
		assert.NotEmpty(t, form.Documents, "form %s", form.ID)
		assert.Equal(t, "/forms/ITR-"+string(form.ID[3])+".pdf", form.DownloadLink)
	}
}

func TestFormCatalogService_GetForm(t *testing.T) {
	service := services.NewFormCatalogService()
	ctx := context.Background()

	form, err := service.GetForm(ctx, business.FormITR4)
	require.NoError(t, err)
	assert.Equal(t, "ITR-4 (Sugam)", form.Name)
	assert.Contains(t, form.CannotFile, "Business turnover above ₹2 crore")

	form, err = service.GetForm(ctx, "ITR9")
	require.Error(t, err)
	assert.Nil(t, form)

	kind, ok := business.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, business.KindInvalidProfile, kind)
}

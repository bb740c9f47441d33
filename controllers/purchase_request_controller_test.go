package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"trackventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchaseDeps struct {
	status  models.RequestStatus
	cat     models.Category
	invoice models.PurchaseInvoice
}

func createPurchaseDeps(t *testing.T, s *Srv) purchaseDeps {
	t.Helper()
	status := models.RequestStatus{StatusName: "Pending", BadgeColor: "#FFA500"}
	require.NoError(t, s.DB.Create(&status).Error)
	cat := models.Category{CategoryName: "Electronics"}
	require.NoError(t, s.DB.Create(&cat).Error)
	invoice := models.PurchaseInvoice{ItemPurchased: "Router", TotalPrice: 120, Budget: 150, Quantity: 1}
	require.NoError(t, s.DB.Create(&invoice).Error)
	return purchaseDeps{status: status, cat: cat, invoice: invoice}
}

func TestPurchaseRequestCreateShowRoundTrip(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewPurchaseRequestController(s)
	deps := createPurchaseDeps(t, s)

	body := fmt.Sprintf(
		`{"request_status_id": %d, "category_id": %d, "invoice_id": %d, "requested_by": "Sam", "item_requested": "Router", "quantity": 2, "price_per_pcs": 60.5, "request_date": "2030-06-15"}`,
		deps.status.ID, deps.cat.ID, deps.invoice.ID)
	w := perform(t, ct.Store, "POST", "/api/purchase-requests", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Router", data["item_requested"])
	assert.Equal(t, 60.5, data["price_per_pcs"])
	assert.Equal(t, "2030-06-15", data["request_date"])
	assert.Nil(t, data["approved_budget"])
	id := fmt.Sprintf("%.0f", data["id"].(float64))

	w = perform(t, ct.Show, "GET", "/api/purchase-requests/"+id, "", idParam(id))
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(deps.invoice.ID), data["invoice_id"])
}

func TestPurchaseRequestStoreValidation(t *testing.T) {
	s := setupTestSrv(t)
	ct := NewPurchaseRequestController(s)
	deps := createPurchaseDeps(t, s)

	body := fmt.Sprintf(
		`{"request_status_id": %d, "category_id": %d, "requested_by": "Sam", "item_requested": "Router", "quantity": 2, "price_per_pcs": 60.5}`,
		deps.status.ID, deps.cat.ID)
	w := perform(t, ct.Store, "POST", "/api/purchase-requests", body, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	msgs := errs["request_date"].([]interface{})
	assert.Equal(t, "The request date field is required.", msgs[0])
}

func TestPurchaseRequestSurvivesInvoiceDestroy(t *testing.T) {
	s := setupTestSrv(t)
	reqCt := NewPurchaseRequestController(s)
	invCt := NewPurchaseInvoiceController(s)
	deps := createPurchaseDeps(t, s)

	pr := models.PurchaseRequest{
		RequestStatusID: deps.status.ID,
		CategoryID:      deps.cat.ID,
		InvoiceID:       &deps.invoice.ID,
		RequestedBy:     "Sam",
		ItemRequested:   "Router",
		Quantity:        2,
		PricePerPcs:     60.5,
		RequestDate:     models.NewDate(2030, 6, 15),
	}
	require.NoError(t, s.DB.Create(&pr).Error)

	w := perform(t, invCt.Destroy, "DELETE", "/api/purchase-invoices/1", "", idParam(fmt.Sprint(deps.invoice.ID)))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, reqCt.Show, "GET", "/api/purchase-requests/1", "", idParam(fmt.Sprint(pr.ID)))
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Nil(t, data["invoice_id"])
}

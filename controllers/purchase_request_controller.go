package controllers

import (
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type PurchaseRequestController struct{ *Srv }

func NewPurchaseRequestController(s *Srv) *PurchaseRequestController {
	return &PurchaseRequestController{Srv: s}
}

var purchaseRequestListConfig = db.ListConfig{
	SearchColumns: []string{"item_requested", "description"},
	SortColumns: []string{
		"id", "item_requested", "quantity", "price_per_pcs",
		"request_date", "approved_budget", "used_budget", "created_at",
	},
}

type purchaseRequestInput struct {
	RequestStatusID *uint        `json:"request_status_id" binding:"required"`
	CategoryID      *uint        `json:"category_id" binding:"required"`
	InvoiceID       *uint        `json:"invoice_id"`
	RequestedBy     string       `json:"requested_by" binding:"required,max=255"`
	ApprovedBy      *string      `json:"approved_by" binding:"omitempty,max=255"`
	ItemRequested   string       `json:"item_requested" binding:"required,max=255"`
	Description     *string      `json:"description"`
	Quantity        *int         `json:"quantity" binding:"required,gte=1"`
	PricePerPcs     *float64     `json:"price_per_pcs" binding:"required,gte=0"`
	RequestDate     *models.Date `json:"request_date" binding:"required"`
	ApprovedBudget  *float64     `json:"approved_budget" binding:"omitempty,gte=0"`
	UsedBudget      *float64     `json:"used_budget" binding:"omitempty,gte=0"`
}

type purchaseRequestUpdateInput struct {
	RequestStatusID *uint        `json:"request_status_id"`
	CategoryID      *uint        `json:"category_id"`
	InvoiceID       *uint        `json:"invoice_id"`
	RequestedBy     *string      `json:"requested_by" binding:"omitempty,max=255"`
	ApprovedBy      *string      `json:"approved_by" binding:"omitempty,max=255"`
	ItemRequested   *string      `json:"item_requested" binding:"omitempty,max=255"`
	Description     *string      `json:"description"`
	Quantity        *int         `json:"quantity" binding:"omitempty,gte=1"`
	PricePerPcs     *float64     `json:"price_per_pcs" binding:"omitempty,gte=0"`
	RequestDate     *models.Date `json:"request_date"`
	ApprovedBudget  *float64     `json:"approved_budget" binding:"omitempty,gte=0"`
	UsedBudget      *float64     `json:"used_budget" binding:"omitempty,gte=0"`
}

func (in purchaseRequestUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.RequestStatusID != nil {
		f["request_status_id"] = *in.RequestStatusID
	}
	if in.CategoryID != nil {
		f["category_id"] = *in.CategoryID
	}
	if in.InvoiceID != nil {
		f["invoice_id"] = *in.InvoiceID
	}
	if in.RequestedBy != nil {
		f["requested_by"] = *in.RequestedBy
	}
	if in.ApprovedBy != nil {
		f["approved_by"] = *in.ApprovedBy
	}
	if in.ItemRequested != nil {
		f["item_requested"] = *in.ItemRequested
	}
	if in.Description != nil {
		f["description"] = *in.Description
	}
	if in.Quantity != nil {
		f["quantity"] = *in.Quantity
	}
	if in.PricePerPcs != nil {
		f["price_per_pcs"] = *in.PricePerPcs
	}
	if in.RequestDate != nil {
		f["request_date"] = *in.RequestDate
	}
	if in.ApprovedBudget != nil {
		f["approved_budget"] = *in.ApprovedBudget
	}
	if in.UsedBudget != nil {
		f["used_budget"] = *in.UsedBudget
	}
	return f
}

func (ct *PurchaseRequestController) Index(c *gin.Context) {
	requests, pg, err := db.List[models.PurchaseRequest](c.Request.Context(), ct.DB, purchaseRequestListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Purchase requests retrieved successfully", "data": requests, "pagination": pg})
}

func (ct *PurchaseRequestController) Store(c *gin.Context) {
	var in purchaseRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	request := models.PurchaseRequest{
		RequestStatusID: *in.RequestStatusID,
		CategoryID:      *in.CategoryID,
		InvoiceID:       in.InvoiceID,
		RequestedBy:     in.RequestedBy,
		ApprovedBy:      in.ApprovedBy,
		ItemRequested:   in.ItemRequested,
		Description:     in.Description,
		Quantity:        *in.Quantity,
		PricePerPcs:     *in.PricePerPcs,
		RequestDate:     *in.RequestDate,
		ApprovedBudget:  in.ApprovedBudget,
		UsedBudget:      in.UsedBudget,
	}
	if err := db.Create(c.Request.Context(), ct.DB, &request); err != nil {
		storeError(c, "Purchase request", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Purchase request created successfully", "data": request})
}

func (ct *PurchaseRequestController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Purchase request")
		return
	}
	request, err := db.Find[models.PurchaseRequest](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Purchase request", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Purchase request retrieved successfully", "data": request})
}

func (ct *PurchaseRequestController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Purchase request")
		return
	}
	var in purchaseRequestUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	request, err := db.UpdateFields[models.PurchaseRequest](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		storeError(c, "Purchase request", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Purchase request updated successfully", "data": request})
}

func (ct *PurchaseRequestController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Purchase request")
		return
	}
	if err := db.Delete[models.PurchaseRequest](c.Request.Context(), ct.DB, id); err != nil {
		storeError(c, "Purchase request", err)
		return
	}
	c.Status(http.StatusNoContent)
}

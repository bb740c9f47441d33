package controllers

import (
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type PurchaseInvoiceController struct{ *Srv }

func NewPurchaseInvoiceController(s *Srv) *PurchaseInvoiceController {
	return &PurchaseInvoiceController{Srv: s}
}

var purchaseInvoiceListConfig = db.ListConfig{
	SearchColumns: []string{"item_purchased"},
	SortColumns:   []string{"id", "item_purchased", "total_price", "budget", "quantity", "created_at"},
}

type purchaseInvoiceInput struct {
	ItemPurchased string   `json:"item_purchased" binding:"required,max=255"`
	TotalPrice    *float64 `json:"total_price" binding:"required,gte=0"`
	Budget        *float64 `json:"budget" binding:"required,gte=0"`
	Quantity      *int     `json:"quantity" binding:"required,gte=1"`
	Img           *string  `json:"img"`
}

type purchaseInvoiceUpdateInput struct {
	ItemPurchased *string  `json:"item_purchased" binding:"omitempty,max=255"`
	TotalPrice    *float64 `json:"total_price" binding:"omitempty,gte=0"`
	Budget        *float64 `json:"budget" binding:"omitempty,gte=0"`
	Quantity      *int     `json:"quantity" binding:"omitempty,gte=1"`
	Img           *string  `json:"img"`
}

func (in purchaseInvoiceUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.ItemPurchased != nil {
		f["item_purchased"] = *in.ItemPurchased
	}
	if in.TotalPrice != nil {
		f["total_price"] = *in.TotalPrice
	}
	if in.Budget != nil {
		f["budget"] = *in.Budget
	}
	if in.Quantity != nil {
		f["quantity"] = *in.Quantity
	}
	if in.Img != nil {
		f["img"] = *in.Img
	}
	return f
}

func (ct *PurchaseInvoiceController) Index(c *gin.Context) {
	invoices, pg, err := db.List[models.PurchaseInvoice](c.Request.Context(), ct.DB, purchaseInvoiceListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Purchase invoices retrieved successfully", "data": invoices, "pagination": pg})
}

func (ct *PurchaseInvoiceController) Store(c *gin.Context) {
	var in purchaseInvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	invoice := models.PurchaseInvoice{
		ItemPurchased: in.ItemPurchased,
		TotalPrice:    *in.TotalPrice,
		Budget:        *in.Budget,
		Quantity:      *in.Quantity,
		Img:           in.Img,
	}
	if err := db.Create(c.Request.Context(), ct.DB, &invoice); err != nil {
		storeError(c, "Purchase invoice", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Purchase invoice created successfully", "data": invoice})
}

func (ct *PurchaseInvoiceController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Purchase invoice")
		return
	}
	invoice, err := db.Find[models.PurchaseInvoice](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Purchase invoice", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Purchase invoice retrieved successfully", "data": invoice})
}

func (ct *PurchaseInvoiceController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Purchase invoice")
		return
	}
	var in purchaseInvoiceUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	invoice, err := db.UpdateFields[models.PurchaseInvoice](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		storeError(c, "Purchase invoice", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Purchase invoice updated successfully", "data": invoice})
}

func (ct *PurchaseInvoiceController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Purchase invoice")
		return
	}
	if err := db.Delete[models.PurchaseInvoice](c.Request.Context(), ct.DB, id); err != nil {
		storeError(c, "Purchase invoice", err)
		return
	}
	c.Status(http.StatusNoContent)
}

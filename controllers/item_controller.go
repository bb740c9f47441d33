package controllers

import (
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

var itemListConfig = db.ListConfig{
	SearchColumns: []string{"item_name"},
	SortColumns:   []string{"id", "item_name", "stock", "created_at"},
}

type itemInput struct {
	CategoryID *uint  `json:"category_id" binding:"required"`
	ItemName   string `json:"item_name" binding:"required,max=255"`
	Stock      *int   `json:"stock" binding:"required,gte=0"`
}

type itemUpdateInput struct {
	CategoryID *uint   `json:"category_id"`
	ItemName   *string `json:"item_name" binding:"omitempty,max=255"`
	Stock      *int    `json:"stock" binding:"omitempty,gte=0"`
}

func (in itemUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.CategoryID != nil {
		f["category_id"] = *in.CategoryID
	}
	if in.ItemName != nil {
		f["item_name"] = *in.ItemName
	}
	if in.Stock != nil {
		f["stock"] = *in.Stock
	}
	return f
}

func (ct *ItemController) Index(c *gin.Context) {
	items, pg, err := db.List[models.Item](c.Request.Context(), ct.DB, itemListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Items retrieved successfully", "data": items, "pagination": pg})
}

func (ct *ItemController) Store(c *gin.Context) {
	var in itemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	item := models.Item{CategoryID: *in.CategoryID, ItemName: in.ItemName, Stock: *in.Stock}
	if err := db.Create(c.Request.Context(), ct.DB, &item); err != nil {
		storeError(c, "Item", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Item created successfully", "data": item})
}

func (ct *ItemController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Item")
		return
	}
	item, err := db.Find[models.Item](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Item", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Item retrieved successfully", "data": item})
}

func (ct *ItemController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Item")
		return
	}
	var in itemUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	item, err := db.UpdateFields[models.Item](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		storeError(c, "Item", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Item updated successfully", "data": item})
}

// Destroy answers 204 like every other resource; the old API's 200 here
// was an inconsistency we chose not to keep.
func (ct *ItemController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Item")
		return
	}
	if err := db.Delete[models.Item](c.Request.Context(), ct.DB, id); err != nil {
		storeError(c, "Item", err)
		return
	}
	c.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type ItemBorrowedController struct{ *Srv }

func NewItemBorrowedController(s *Srv) *ItemBorrowedController {
	return &ItemBorrowedController{Srv: s}
}

// Date and numeric columns are searched as text on purpose, so "2" finds a
// quantity of 25 and "2025-06" finds June dates.
var itemBorrowedListConfig = db.ListConfig{
	SearchCasts: []string{"borrow_date", "return_date", "due_date", "quantity", "fine"},
	SortColumns: []string{"id", "borrow_date", "return_date", "due_date", "quantity", "fine", "created_at"},
}

type itemBorrowedInput struct {
	UserID         *uint        `json:"user_id" binding:"required"`
	ItemID         *uint        `json:"item_id" binding:"required"`
	BorrowStatusID *uint        `json:"borrow_status_id" binding:"required"`
	Quantity       *int         `json:"quantity" binding:"required,gte=1"`
	BorrowDate     *models.Date `json:"borrow_date" binding:"required"`
	ReturnDate     *models.Date `json:"return_date"`
	DueDate        *models.Date `json:"due_date" binding:"required"`
	Fine           *float64     `json:"fine" binding:"omitempty,gte=0"`
}

type itemBorrowedUpdateInput struct {
	UserID         *uint        `json:"user_id"`
	ItemID         *uint        `json:"item_id"`
	BorrowStatusID *uint        `json:"borrow_status_id"`
	Quantity       *int         `json:"quantity" binding:"omitempty,gte=1"`
	BorrowDate     *models.Date `json:"borrow_date"`
	ReturnDate     *models.Date `json:"return_date"`
	DueDate        *models.Date `json:"due_date"`
	Fine           *float64     `json:"fine" binding:"omitempty,gte=0"`
}

func (in itemBorrowedUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.UserID != nil {
		f["user_id"] = *in.UserID
	}
	if in.ItemID != nil {
		f["item_id"] = *in.ItemID
	}
	if in.BorrowStatusID != nil {
		f["borrow_status_id"] = *in.BorrowStatusID
	}
	if in.Quantity != nil {
		f["quantity"] = *in.Quantity
	}
	if in.BorrowDate != nil {
		f["borrow_date"] = *in.BorrowDate
	}
	if in.ReturnDate != nil {
		f["return_date"] = *in.ReturnDate
	}
	if in.DueDate != nil {
		f["due_date"] = *in.DueDate
	}
	if in.Fine != nil {
		f["fine"] = *in.Fine
	}
	return f
}

func (ct *ItemBorrowedController) Index(c *gin.Context) {
	borrowed, pg, err := db.List[models.ItemBorrowed](c.Request.Context(), ct.DB, itemBorrowedListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Items borrowed retrieved successfully", "data": borrowed, "pagination": pg})
}

func (ct *ItemBorrowedController) Store(c *gin.Context) {
	var in itemBorrowedInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	borrowed := models.ItemBorrowed{
		UserID:         *in.UserID,
		ItemID:         *in.ItemID,
		BorrowStatusID: *in.BorrowStatusID,
		Quantity:       *in.Quantity,
		BorrowDate:     *in.BorrowDate,
		ReturnDate:     in.ReturnDate,
		DueDate:        *in.DueDate,
	}
	if in.Fine != nil {
		borrowed.Fine = *in.Fine
	}
	if err := db.Create(c.Request.Context(), ct.DB, &borrowed); err != nil {
		storeError(c, "Item borrowed", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Item borrowed created successfully", "data": borrowed})
}

func (ct *ItemBorrowedController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Item borrowed")
		return
	}
	borrowed, err := db.Find[models.ItemBorrowed](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Item borrowed", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Item borrowed retrieved successfully", "data": borrowed})
}

func (ct *ItemBorrowedController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Item borrowed")
		return
	}
	var in itemBorrowedUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	borrowed, err := db.UpdateFields[models.ItemBorrowed](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		storeError(c, "Item borrowed", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Item borrowed updated successfully", "data": borrowed})
}

func (ct *ItemBorrowedController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Item borrowed")
		return
	}
	if err := db.Delete[models.ItemBorrowed](c.Request.Context(), ct.DB, id); err != nil {
		storeError(c, "Item borrowed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

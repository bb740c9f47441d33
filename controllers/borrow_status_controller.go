package controllers

import (
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type BorrowStatusController struct{ *Srv }

func NewBorrowStatusController(s *Srv) *BorrowStatusController {
	return &BorrowStatusController{Srv: s}
}

var borrowStatusListConfig = db.ListConfig{
	SearchColumns: []string{"status_name"},
	SortColumns:   []string{"id", "status_name", "created_at"},
}

type borrowStatusInput struct {
	StatusName string `json:"status_name" binding:"required,max=255"`
	BadgeColor string `json:"badge_color" binding:"required,max=7"`
}

type borrowStatusUpdateInput struct {
	StatusName *string `json:"status_name" binding:"omitempty,max=255"`
	BadgeColor *string `json:"badge_color" binding:"omitempty,max=7"`
}

func (in borrowStatusUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.StatusName != nil {
		f["status_name"] = *in.StatusName
	}
	if in.BadgeColor != nil {
		f["badge_color"] = *in.BadgeColor
	}
	return f
}

func (ct *BorrowStatusController) Index(c *gin.Context) {
	statuses, pg, err := db.List[models.BorrowStatus](c.Request.Context(), ct.DB, borrowStatusListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Borrow statuses retrieved successfully", "data": statuses, "pagination": pg})
}

func (ct *BorrowStatusController) Store(c *gin.Context) {
	var in borrowStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	status := models.BorrowStatus{StatusName: in.StatusName, BadgeColor: in.BadgeColor}
	if err := db.Create(c.Request.Context(), ct.DB, &status); err != nil {
		storeError(c, "Borrow status", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Borrow status created successfully", "data": status})
}

func (ct *BorrowStatusController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Borrow status")
		return
	}
	status, err := db.Find[models.BorrowStatus](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Borrow status", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Borrow status retrieved successfully", "data": status})
}

func (ct *BorrowStatusController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Borrow status")
		return
	}
	var in borrowStatusUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	status, err := db.UpdateFields[models.BorrowStatus](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		storeError(c, "Borrow status", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Borrow status updated successfully", "data": status})
}

func (ct *BorrowStatusController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Borrow status")
		return
	}
	if err := db.Delete[models.BorrowStatus](c.Request.Context(), ct.DB, id); err != nil {
		storeError(c, "Borrow status", err)
		return
	}
	c.Status(http.StatusNoContent)
}

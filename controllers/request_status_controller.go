package controllers

import (
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type RequestStatusController struct{ *Srv }

func NewRequestStatusController(s *Srv) *RequestStatusController {
	return &RequestStatusController{Srv: s}
}

var requestStatusListConfig = db.ListConfig{
	SearchColumns: []string{"status_name"},
	SortColumns:   []string{"id", "status_name", "created_at"},
}

type requestStatusInput struct {
	StatusName string `json:"status_name" binding:"required,max=255"`
	BadgeColor string `json:"badge_color" binding:"required,max=255"`
}

type requestStatusUpdateInput struct {
	StatusName *string `json:"status_name" binding:"omitempty,max=255"`
	BadgeColor *string `json:"badge_color" binding:"omitempty,max=255"`
}

func (in requestStatusUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.StatusName != nil {
		f["status_name"] = *in.StatusName
	}
	if in.BadgeColor != nil {
		f["badge_color"] = *in.BadgeColor
	}
	return f
}

func (ct *RequestStatusController) Index(c *gin.Context) {
	statuses, pg, err := db.List[models.RequestStatus](c.Request.Context(), ct.DB, requestStatusListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Request statuses retrieved successfully", "data": statuses, "pagination": pg})
}

func (ct *RequestStatusController) Store(c *gin.Context) {
	var in requestStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	status := models.RequestStatus{StatusName: in.StatusName, BadgeColor: in.BadgeColor}
	if err := db.Create(c.Request.Context(), ct.DB, &status); err != nil {
		storeError(c, "Request status", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Request status created successfully", "data": status})
}

func (ct *RequestStatusController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Request status")
		return
	}
	status, err := db.Find[models.RequestStatus](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Request status", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Request status retrieved successfully", "data": status})
}

func (ct *RequestStatusController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Request status")
		return
	}
	var in requestStatusUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	status, err := db.UpdateFields[models.RequestStatus](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		storeError(c, "Request status", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Request status updated successfully", "data": status})
}

func (ct *RequestStatusController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Request status")
		return
	}
	if err := db.Delete[models.RequestStatus](c.Request.Context(), ct.DB, id); err != nil {
		storeError(c, "Request status", err)
		return
	}
	c.Status(http.StatusNoContent)
}

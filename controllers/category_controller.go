package controllers

import (
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ *Srv }

func NewCategoryController(s *Srv) *CategoryController { return &CategoryController{Srv: s} }

var categoryListConfig = db.ListConfig{
	SearchColumns: []string{"category_name", "description"},
	SortColumns:   []string{"id", "category_name", "created_at"},
}

type categoryInput struct {
	CategoryName string  `json:"category_name" binding:"required,max=255"`
	Description  *string `json:"description"`
}

type categoryUpdateInput struct {
	CategoryName *string `json:"category_name" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
}

func (in categoryUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.CategoryName != nil {
		f["category_name"] = *in.CategoryName
	}
	if in.Description != nil {
		f["description"] = *in.Description
	}
	return f
}

func (ct *CategoryController) Index(c *gin.Context) {
	categories, pg, err := db.List[models.Category](c.Request.Context(), ct.DB, categoryListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Categories retrieved successfully", "data": categories, "pagination": pg})
}

func (ct *CategoryController) Store(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	category := models.Category{CategoryName: in.CategoryName, Description: in.Description}
	if err := db.Create(c.Request.Context(), ct.DB, &category); err != nil {
		storeError(c, "Category", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Category created successfully", "data": category})
}

func (ct *CategoryController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Category")
		return
	}
	category, err := db.Find[models.Category](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Category", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Category retrieved successfully", "data": category})
}

func (ct *CategoryController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Category")
		return
	}
	var in categoryUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	category, err := db.UpdateFields[models.Category](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		storeError(c, "Category", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Category updated successfully", "data": category})
}

func (ct *CategoryController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Category")
		return
	}
	if err := db.Delete[models.Category](c.Request.Context(), ct.DB, id); err != nil {
		storeError(c, "Category", err)
		return
	}
	c.Status(http.StatusNoContent)
}

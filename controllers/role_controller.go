package controllers

import (
	"errors"
	"net/http"

	"trackventory/app"
	"trackventory/db"
	"trackventory/models"

	"github.com/gin-gonic/gin"
)

type RoleController struct{ *Srv }

func NewRoleController(s *Srv) *RoleController { return &RoleController{Srv: s} }

var roleListConfig = db.ListConfig{
	SearchColumns: []string{"role_name", "description"},
	SortColumns:   []string{"id", "role_name", "created_at"},
}

type roleInput struct {
	RoleName    string  `json:"role_name" binding:"required,max=255"`
	Description *string `json:"description"`
}

type roleUpdateInput struct {
	RoleName    *string `json:"role_name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

func (in roleUpdateInput) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if in.RoleName != nil {
		f["role_name"] = *in.RoleName
	}
	if in.Description != nil {
		f["description"] = *in.Description
	}
	return f
}

func (ct *RoleController) Index(c *gin.Context) {
	roles, pg, err := db.List[models.Role](c.Request.Context(), ct.DB, roleListConfig, listParams(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Roles retrieved successfully", "data": roles, "pagination": pg})
}

func (ct *RoleController) Store(c *gin.Context) {
	var in roleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	role := models.Role{RoleName: in.RoleName, Description: in.Description}
	if err := db.Create(c.Request.Context(), ct.DB, &role); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			c.JSON(http.StatusUnprocessableEntity, app.H{
				"message": "The given data was invalid.",
				"errors":  map[string][]string{"role_name": {"The role name has already been taken."}},
			})
			return
		}
		storeError(c, "Role", err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"message": "Role created successfully", "data": role})
}

func (ct *RoleController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Role")
		return
	}
	role, err := db.Find[models.Role](c.Request.Context(), ct.DB, id)
	if err != nil {
		storeError(c, "Role", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Role retrieved successfully", "data": role})
}

func (ct *RoleController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Role")
		return
	}
	var in roleUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationFailed(c, err)
		return
	}
	role, err := db.UpdateFields[models.Role](c.Request.Context(), ct.DB, id, in.fields())
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			c.JSON(http.StatusUnprocessableEntity, app.H{
				"message": "The given data was invalid.",
				"errors":  map[string][]string{"role_name": {"The role name has already been taken."}},
			})
			return
		}
		storeError(c, "Role", err)
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Role updated successfully", "data": role})
}

func (ct *RoleController) Destroy(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c, "Role")
		return
	}
	if err := db.DeleteRole(c.Request.Context(), ct.DB, id); err != nil {
		if errors.Is(err, db.ErrRoleInUse) {
			c.JSON(http.StatusConflict, app.H{"message": "Cannot delete role with associated users"})
			return
		}
		storeError(c, "Role", err)
		return
	}
	c.Status(http.StatusNoContent)
}
